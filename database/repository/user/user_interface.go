package userRepo

import (
	"context"

	"campusportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error)
	// UpdateRole changes a user's role.
	UpdateRole(ctx context.Context, id, role string) error
	// SetTokenHash stores the hash of the user's current token; empty clears it.
	SetTokenHash(ctx context.Context, id, hash string) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}
