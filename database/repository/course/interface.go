package courseRepo

import (
	"context"

	"campusportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetAll(ctx context.Context) ([]models.Course, error)
	// GetByIDs returns the courses that exist among ids, keyed by id.
	GetByIDs(ctx context.Context, ids []string) (map[string]models.Course, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoCourseRepo struct {
	coll *mongo.Collection
}

// NewMongoCourseRepo constructs a MongoDB CourseRepository over db.courses.
func NewMongoCourseRepo(db *mongo.Database) CourseRepository {
	return &mongoCourseRepo{coll: db.Collection("courses")}
}
