package user

import (
	"context"
	"fmt"

	"campusportal/models"
	"campusportal/utils"

	"go.uber.org/zap"
)

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.Repo.GetByID(ctx, userID)
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateUserRole changes the role and signs the user out so the next token carries it.
func (s *DefaultUserService) UpdateUserRole(ctx context.Context, userID, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", utils.ErrInvalidInput, role)
	}
	if err := s.Repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	if err := s.revoke(ctx, userID); err != nil {
		utils.GetLogger().Warn("Role changed but session not revoked", zap.String("userID", userID), zap.Error(err))
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *DefaultUserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.dropCachedToken(ctx, userID)
	return nil
}
