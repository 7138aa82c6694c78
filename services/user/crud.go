package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "needmeet/database/repository/user"
	"needmeet/models"
	"needmeet/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID returns the user with the given id.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, utils.InvalidArgumentError("user ID is required")
	}
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("user %s not found", id))
		}
		return nil, utils.DependencyError("failed to fetch user", err)
	}
	return usr, nil
}

// GetAllUsers returns all user accounts.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.DependencyError("failed to fetch users", err)
	}
	return users, nil
}

// UpdateUser updates non-empty user fields using a partial update.
func (s *DefaultUserService) UpdateUser(ctx context.Context, update models.User) (*models.User, error) {
	logger := utils.GetLogger()

	if update.ID == "" {
		return nil, utils.InvalidArgumentError("user ID is required for update")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.Email != "" {
		updateFields["email"] = update.Email
	}
	if update.Phone != "" {
		updateFields["phone"] = update.Phone
	}
	if update.Address != "" {
		updateFields["address"] = update.Address
	}
	if update.ProfilePicture != "" {
		updateFields["profilePicture"] = update.ProfilePicture
	}
	if len(updateFields) == 1 {
		return nil, utils.InvalidArgumentError("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(ctx, update.ID, updateFields); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("user %s not found", update.ID))
		}
		return nil, utils.DependencyError("failed to update user", err)
	}

	updated, err := s.Repo.GetByID(ctx, update.ID)
	if err != nil {
		return nil, utils.DependencyError("failed to fetch updated user", err)
	}
	logger.Debug("User updated", zap.String("userID", update.ID))
	return updated, nil
}

// DeleteUser removes the user account entirely.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return utils.InvalidArgumentError("user ID is required")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return utils.NotFoundError(fmt.Sprintf("user %s not found", id))
		}
		return utils.DependencyError("failed to delete user", err)
	}
	utils.GetLogger().Info("User deleted", zap.String("userID", id))
	return nil
}
