package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusportal/database/repository"
	"campusportal/models"
	"campusportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates a student account and signs it in. Elevated roles are granted by an admin.
func (s *DefaultUserService) Register(ctx context.Context, in models.RegisterInput) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", utils.ErrInvalidInput)
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists: %w", repository.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
		Department:   in.Department,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("User registered", zap.String("userID", usr.ID))

	return s.issueToken(ctx, usr)
}

// Login checks the password and replaces any earlier session with a new token.
func (s *DefaultUserService) Login(ctx context.Context, in models.LoginInput) (*models.AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		utils.GetLogger().Error("Login: user lookup failed", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(ctx, usr)
}

// Logout invalidates the user's current token.
func (s *DefaultUserService) Logout(ctx context.Context, userID string) error {
	return s.revoke(ctx, userID)
}

func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, s.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, usr.ID, hash); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+usr.ID, hash, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to cache token hash", zap.String("userID", usr.ID), zap.Error(err))
		}
	}
	return &models.AuthResponse{ID: usr.ID, Token: token, Name: usr.Name, Email: usr.Email, Role: usr.Role}, nil
}

func (s *DefaultUserService) revoke(ctx context.Context, userID string) error {
	if err := s.Repo.SetTokenHash(ctx, userID, ""); err != nil {
		return err
	}
	s.dropCachedToken(ctx, userID)
	return nil
}

func (s *DefaultUserService) dropCachedToken(ctx context.Context, userID string) {
	if s.AuthCache != nil {
		cacheCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := s.AuthCache.Del(cacheCtx, utils.AuthCachePrefix+userID).Err(); err != nil {
			utils.GetLogger().Warn("Failed to clear cached token", zap.String("userID", userID), zap.Error(err))
		}
	}
}
