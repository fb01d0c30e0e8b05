package timetableRepo

import (
	"context"

	"campusportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TimetableRepository interface {
	Create(ctx context.Context, entry *models.TimetableEntry) error
	Update(ctx context.Context, entry *models.TimetableEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.TimetableEntry, error)
	Find(ctx context.Context, filter models.TimetableFilter) ([]models.TimetableEntry, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoTimetableRepo struct {
	coll *mongo.Collection
}

// NewMongoTimetableRepo constructs a MongoDB TimetableRepository over db.timetables.
func NewMongoTimetableRepo(db *mongo.Database) TimetableRepository {
	return &mongoTimetableRepo{coll: db.Collection("timetables")}
}
