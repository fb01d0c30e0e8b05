package courseRepo

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

func (r *mongoCourseRepo) Create(ctx context.Context, course *models.Course) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, course); err != nil {
		return fmt.Errorf("failed to create course: %w", repository.Translate(err))
	}
	return nil
}

func (r *mongoCourseRepo) Update(ctx context.Context, course *models.Course) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	course.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"code":        course.Code,
		"name":        course.Name,
		"department":  course.Department,
		"lecturer_id": course.LecturerID,
		"updated_at":  course.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": course.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update course %s: %w", course.ID, repository.Translate(err))
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoCourseRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete course %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var c models.Course
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		return nil, repository.Translate(err)
	}
	return &c, nil
}

func (r *mongoCourseRepo) GetAll(ctx context.Context) ([]models.Course, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoCourseRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Course, error) {
	out := make(map[string]models.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	courses, err := r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	for _, c := range courses {
		out[c.ID] = c
	}
	return out, nil
}

func (r *mongoCourseRepo) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("error decoding courses: %w", err)
	}
	return courses, nil
}

func (r *mongoCourseRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create course indexes: %w", err)
	}
	return nil
}
