package booking

import (
	"context"
	"fmt"

	"campusportal/models"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"go.uber.org/zap"
)

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.Find(ctx, models.BookingFilter{UserID: userID})
}

// ListBookings returns bookings matching filter. Dates in the filter must be ISO dates.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	for _, d := range []string{filter.Date, filter.FromDate} {
		if d == "" {
			continue
		}
		if _, err := scheduling.ParseDate(d); err != nil {
			return nil, err
		}
	}
	if filter.Status != "" && filter.Status != models.BookingPending &&
		filter.Status != models.BookingConfirmed && filter.Status != models.BookingCancelled {
		return nil, fmt.Errorf("%w: unknown status %q", utils.ErrInvalidInput, filter.Status)
	}
	return s.Repo.Find(ctx, filter)
}

// UpdateBookingStatus lets an admin confirm or cancel any booking and an owner
// cancel their own. Cancelled bookings never change again.
func (s *DefaultBookingService) UpdateBookingStatus(ctx context.Context, actorID, actorRole, bookingID, status string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	isAdmin := actorRole == models.RoleAdmin
	isOwner := booking.UserID == actorID
	switch {
	case isAdmin:
	case isOwner && status == models.BookingCancelled:
	default:
		return nil, fmt.Errorf("%w: not allowed to set booking to %s", utils.ErrForbidden, status)
	}

	if !models.ValidBookingTransition(booking.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", utils.ErrInvalidTransition, booking.Status, status)
	}
	if err := s.Repo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status

	utils.GetLogger().Info("Booking status changed",
		zap.String("bookingID", bookingID), zap.String("status", status), zap.String("actorID", actorID))
	if s.NotificationSvc != nil {
		roomName := ""
		if room, err := s.Loader.Rooms.GetByID(ctx, booking.RoomID); err == nil {
			roomName = room.Name
		}
		s.NotificationSvc.NotifyBookingStatus(ctx, *booking, roomName)
	}
	return booking, nil
}
