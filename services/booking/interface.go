package booking

import (
	"context"

	bookingRepo "campusportal/database/repository/booking"
	"campusportal/models"
	"campusportal/services"
	"campusportal/services/notification"
	"campusportal/utils"
)

// BookingService creates one-off room bookings and moves them through their lifecycle.
type BookingService interface {
	CreateBooking(ctx context.Context, userID, role string, in models.BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, actorID, actorRole, bookingID, status string) (*models.Booking, error)
}

// DefaultBookingService admits bookings one room at a time: the room lock is held
// from reading existing commitments until the new booking is written.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Loader *services.ScheduleLoader
	Locker utils.RoomLocker
	// NotificationSvc may be nil.
	NotificationSvc notification.NotificationService
}

func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	loader *services.ScheduleLoader,
	locker utils.RoomLocker,
	notifier notification.NotificationService,
) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Loader: loader, Locker: locker, NotificationSvc: notifier}
}
