package models

import "time"

// User roles.
const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

// User represents a platform user account.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Email          string    `bson:"email" json:"email"`
	Password       string    `bson:"-" json:"password,omitempty"`
	PasswordHash   string    `bson:"passwordHash" json:"-"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	Role           string    `bson:"role" json:"role"`
	IsAdmin        bool      `bson:"isAdmin" json:"isAdmin"`
	ProfilePicture string    `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
