package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"campusportal/database/repository"
	"campusportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", repository.Translate(err))
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	var b models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		return nil, repository.Translate(err)
	}
	return &b, nil
}

func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", id, repository.Translate(err))
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *mongoBookingRepo) Find(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := repository.WithTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filterDoc(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func filterDoc(f models.BookingFilter) bson.M {
	doc := bson.M{}
	if f.RoomID != "" {
		doc["room_id"] = f.RoomID
	}
	if f.UserID != "" {
		doc["user_id"] = f.UserID
	}
	// ISO dates order lexically.
	switch {
	case f.Date != "":
		doc["date"] = f.Date
	case f.FromDate != "":
		doc["date"] = bson.M{"$gte": f.FromDate}
	}
	switch {
	case f.Status != "":
		doc["status"] = f.Status
	case f.ActiveOnly:
		doc["status"] = bson.M{"$in": activeStatuses}
	}
	return doc
}

var activeStatuses = []string{models.BookingPending, models.BookingConfirmed}
