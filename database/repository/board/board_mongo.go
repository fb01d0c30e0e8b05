package boardRepo

import (
	"context"
	"fmt"
	"time"

	"campusportal/database/repository"
	"campusportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	a.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

func (r *mongoAnnouncementRepo) List(ctx context.Context, audience string) ([]models.Announcement, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if audience != "" {
		filter["audience"] = bson.M{"$in": bson.A{"", nil, audience}}
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.Announcement{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding announcements: %w", err)
	}
	return out, nil
}

func (r *mongoAnnouncementRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete announcement %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoReportRepo) Create(ctx context.Context, rep *models.MaintenanceReport) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	rep.CreatedAt = now
	rep.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, rep); err != nil {
		return fmt.Errorf("failed to create maintenance report: %w", err)
	}
	return nil
}

func (r *mongoReportRepo) GetByID(ctx context.Context, id string) (*models.MaintenanceReport, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var rep models.MaintenanceReport
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rep); err != nil {
		return nil, repository.Translate(err)
	}
	return &rep, nil
}

func (r *mongoReportRepo) List(ctx context.Context, status string) ([]models.MaintenanceReport, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance reports: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.MaintenanceReport{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding maintenance reports: %w", err)
	}
	return out, nil
}

func (r *mongoReportRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update maintenance report %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
