package bookingRepo

import (
	"context"

	"campusportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	// Create inserts a booking. A second active booking for the same room, date and
	// times fails with repository.ErrDuplicate.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Find(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository over db.bookings.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{coll: db.Collection("bookings")}
}
