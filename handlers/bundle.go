package handlers

import (
	userRepoPkg "needmeet/database/repository/user"
)

// HandlerBundle groups all endpoint handlers and the repositories the
// routing middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Users     *UserHandler
	Providers *ProviderHandler
	Bookings  *BookingHandler
	Ratings   *RatingHandler
	Admin     *AdminHandler
	Emergency *EmergencyHandler
}
