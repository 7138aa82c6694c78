package user

import (
	"context"
	"time"

	providerRepo "needmeet/database/repository/provider"
	userRepo "needmeet/database/repository/user"
	"needmeet/models"

	"github.com/go-redis/redis/v8"
)

// SignUpInput is the registration payload. Provider-role signups also carry
// the initial service catalogue.
type SignUpInput struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Role     string   `json:"role,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Address  string   `json:"address,omitempty"`
	Services []string `json:"services,omitempty"`
	Location string   `json:"location,omitempty"`
}

// AuthResponse contains the authenticated principal and its session token.
type AuthResponse struct {
	ID      string       `json:"id"`
	Token   string       `json:"token"`
	Name    string       `json:"name,omitempty"`
	Email   string       `json:"email,omitempty"`
	Role    string       `json:"role,omitempty"`
	IsAdmin bool         `json:"isAdmin,omitempty"`
	User    *models.User `json:"user,omitempty"`
}

// UserService owns account registration, authentication and user management.
type UserService interface {
	SignUp(ctx context.Context, input SignUpInput) (*AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// DefaultUserService is the production implementation. A provider-role signup
// also creates the corresponding Provider document. AuthCache is optional;
// when set, issued token hashes are cached for the auth middleware fast path.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	Providers providerRepo.ProviderRepository
	AuthCache *redis.Client
	TokenTTL  time.Duration
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return time.Hour
}
