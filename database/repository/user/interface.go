package userRepo

import (
	"context"
	"errors"

	"needmeet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrUserNotFound is returned when a user id or email resolves to no document.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// UpdateWithDocument patches a user document with the specified update fields.
	UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
