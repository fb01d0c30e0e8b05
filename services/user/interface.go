package user

import (
	"context"
	"time"

	userRepo "campusportal/database/repository/user"
	"campusportal/models"

	"github.com/go-redis/redis/v8"
)

type UserService interface {
	// Authentication
	Register(ctx context.Context, in models.RegisterInput) (*models.AuthResponse, error)
	Login(ctx context.Context, in models.LoginInput) (*models.AuthResponse, error)
	Logout(ctx context.Context, userID string) error

	// User Management
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// Admin
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID, role string) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	// AuthCache mirrors token hashes for the auth middleware. Nil disables it.
	AuthCache *redis.Client
	TokenTTL  time.Duration
}

func NewDefaultUserService(repo userRepo.UserRepository, authCache *redis.Client, tokenTTL time.Duration) *DefaultUserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &DefaultUserService{Repo: repo, AuthCache: authCache, TokenTTL: tokenTTL}
}
