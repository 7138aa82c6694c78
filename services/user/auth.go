package user

import (
	"context"
	"errors"
	"time"

	userRepo "needmeet/database/repository/user"
	"needmeet/models"
	"needmeet/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignUp registers a new account. The email must be unused; provider-role
// signups also create a Provider document so the account can be booked.
func (s *DefaultUserService) SignUp(ctx context.Context, input SignUpInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, utils.InvalidArgumentError("name, email, and password are required")
	}
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleProvider {
		return nil, utils.InvalidArgumentError("role must be 'user' or 'provider'")
	}

	if _, err := s.Repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, utils.ConflictError("user already exists")
	} else if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, utils.DependencyError("failed to check existing user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.DependencyError("failed to hash password", err)
	}

	now := time.Now()
	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Address:      input.Address,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, utils.DependencyError("failed to create user", err)
	}

	if role == models.RoleProvider {
		provider := &models.Provider{
			ID:         usr.ID,
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
			Address:    input.Address,
			Services:   input.Services,
			Location:   input.Location,
			Reviews:    []models.Review{},
			ReportedBy: []string{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.Providers.Create(ctx, provider); err != nil {
			return nil, utils.DependencyError("failed to create provider profile", err)
		}
	}

	token, err := s.issueToken(ctx, usr)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", zap.String("userID", usr.ID), zap.String("role", role))
	return &AuthResponse{
		ID:      usr.ID,
		Token:   token,
		Name:    usr.Name,
		Email:   usr.Email,
		Role:    usr.Role,
		IsAdmin: usr.IsAdmin,
		User:    usr,
	}, nil
}

// SignIn authenticates by email and password and issues a session token.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.InvalidArgumentError("email and password are required")
	}

	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, utils.InvalidArgumentError("invalid credentials")
		}
		return nil, utils.DependencyError("failed to fetch user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, utils.InvalidArgumentError("invalid credentials")
	}

	token, err := s.issueToken(ctx, usr)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("User signed in", zap.String("userID", usr.ID))
	return &AuthResponse{
		ID:      usr.ID,
		Token:   token,
		Name:    usr.Name,
		Email:   usr.Email,
		Role:    usr.Role,
		IsAdmin: usr.IsAdmin,
		User:    usr,
	}, nil
}

// issueToken signs a JWT for the user and caches its hash for the auth
// middleware fast path. Cache failures are logged, never fatal.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, s.tokenTTL())
	if err != nil {
		return "", utils.DependencyError("failed to generate token", err)
	}
	if s.AuthCache != nil {
		key := utils.AuthCachePrefix + usr.ID
		if err := s.AuthCache.Set(ctx, key, utils.HashToken(token), s.tokenTTL()).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache auth token", zap.String("userID", usr.ID), zap.Error(err))
		}
	}
	return token, nil
}
