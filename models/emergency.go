package models

import "time"

// SOSAlert is an emergency alert raised by a user during an engagement.
type SOSAlert struct {
	UserID    string    `json:"userId"`
	Location  string    `json:"location"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
