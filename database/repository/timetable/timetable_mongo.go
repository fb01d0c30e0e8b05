package timetableRepo

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

func (r *mongoTimetableRepo) Create(ctx context.Context, entry *models.TimetableEntry) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to create timetable entry: %w", repository.Translate(err))
	}
	return nil
}

func (r *mongoTimetableRepo) Update(ctx context.Context, entry *models.TimetableEntry) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	entry.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"room_id":     entry.RoomID,
		"course_id":   entry.CourseID,
		"day":         entry.Day,
		"start":       entry.Start,
		"end":         entry.End,
		"lecturer_id": entry.LecturerID,
		"updated_at":  entry.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": entry.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update timetable entry %s: %w", entry.ID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoTimetableRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete timetable entry %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoTimetableRepo) GetByID(ctx context.Context, id string) (*models.TimetableEntry, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var e models.TimetableEntry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&e); err != nil {
		return nil, repository.Translate(err)
	}
	return &e, nil
}

// Find returns entries in insertion order so conflict reports are reproducible.
func (r *mongoTimetableRepo) Find(ctx context.Context, filter models.TimetableFilter) ([]models.TimetableEntry, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	doc := bson.M{}
	if filter.RoomID != "" {
		doc["room_id"] = filter.RoomID
	}
	if filter.CourseID != "" {
		doc["course_id"] = filter.CourseID
	}
	if filter.Day != "" {
		doc["day"] = filter.Day
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timetable entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.TimetableEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding timetable entries: %w", err)
	}
	return entries, nil
}

func (r *mongoTimetableRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "room_id", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetName("room_day_idx"),
		},
		{
			Keys:    bson.D{{Key: "course_id", Value: 1}},
			Options: options.Index().SetName("course_idx"),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create timetable indexes: %w", err)
	}
	return nil
}
