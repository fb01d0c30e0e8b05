package roomRepo

import (
	"context"
	"fmt"
	"time"

	"campusportal/database/repository"
	"campusportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRoomRepo) Create(ctx context.Context, room *models.Room) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	if room.Maintenance == nil {
		room.Maintenance = []models.MaintenanceWindow{}
	}
	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to create room: %w", repository.Translate(err))
	}
	return nil
}

func (r *mongoRoomRepo) Update(ctx context.Context, room *models.Room) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	room.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":       room.Name,
		"building":   room.Building,
		"capacity":   room.Capacity,
		"features":   room.Features,
		"updated_at": room.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": room.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update room %s: %w", room.ID, repository.Translate(err))
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoRoomRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete room %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var room models.Room
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		return nil, repository.Translate(err)
	}
	return &room, nil
}

func (r *mongoRoomRepo) GetAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	rooms := []models.Room{}
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *mongoRoomRepo) AddMaintenance(ctx context.Context, id string, w models.MaintenanceWindow) error {
	return r.updateMaintenance(ctx, id, bson.M{
		"$push": bson.M{"maintenance": w},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *mongoRoomRepo) ReplaceMaintenance(ctx context.Context, id string, windows []models.MaintenanceWindow) error {
	if windows == nil {
		windows = []models.MaintenanceWindow{}
	}
	return r.updateMaintenance(ctx, id, bson.M{
		"$set": bson.M{"maintenance": windows, "updated_at": time.Now()},
	})
}

func (r *mongoRoomRepo) updateMaintenance(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update maintenance for room %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the unique id and name indexes on the rooms collection.
func (r *mongoRoomRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_name"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	return nil
}
