package roomRepo

import (
	"context"

	"campusportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Room, error)
	GetAll(ctx context.Context) ([]models.Room, error)
	// AddMaintenance appends a window to the room's maintenance list.
	AddMaintenance(ctx context.Context, id string, w models.MaintenanceWindow) error
	// ReplaceMaintenance overwrites the whole maintenance list.
	ReplaceMaintenance(ctx context.Context, id string, windows []models.MaintenanceWindow) error
	EnsureIndexes(ctx context.Context) error
}

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo constructs a MongoDB RoomRepository over db.rooms.
func NewMongoRoomRepo(db *mongo.Database) RoomRepository {
	return &mongoRoomRepo{coll: db.Collection("rooms")}
}
