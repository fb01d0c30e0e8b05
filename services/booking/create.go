package booking

import (
	"context"
	"errors"
	"fmt"

	"campusportal/database/repository"
	"campusportal/models"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates the request, runs the admission check under the room
// lock and writes the booking. Admins' bookings start confirmed, everyone
// else's pending. A rejection comes back as *scheduling.AdmissionError.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID, role string, in models.BookingInput) (*models.Booking, error) {
	date, err := scheduling.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	start, err := scheduling.ParseTimeOfDay(in.Start)
	if err != nil {
		return nil, err
	}
	end, err := scheduling.ParseTimeOfDay(in.End)
	if err != nil {
		return nil, err
	}
	candidate := scheduling.Candidate{RoomID: in.RoomID, Date: date, Start: start, End: end}
	if err := candidate.Interval().Validate(); err != nil {
		return nil, err
	}

	status := models.BookingPending
	if role == models.RoleAdmin {
		status = models.BookingConfirmed
	}
	booking := &models.Booking{
		ID:      uuid.New().String(),
		RoomID:  in.RoomID,
		UserID:  userID,
		Date:    date.String(),
		Day:     date.Weekday().String(),
		Start:   start.String(),
		End:     end.String(),
		Purpose: in.Purpose,
		Status:  status,
	}

	roomName, err := s.admitAndInsert(ctx, candidate, booking)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Booking created",
		zap.String("bookingID", booking.ID), zap.String("roomID", booking.RoomID),
		zap.String("date", booking.Date), zap.String("status", booking.Status))
	if s.NotificationSvc != nil {
		s.NotificationSvc.NotifyBookingCreated(ctx, *booking, roomName)
	}
	return booking, nil
}

func (s *DefaultBookingService) admitAndInsert(ctx context.Context, c scheduling.Candidate, booking *models.Booking) (string, error) {
	unlock, err := s.Locker.Lock(ctx, c.RoomID)
	if err != nil {
		return "", fmt.Errorf("room is busy, please retry: %w", err)
	}
	defer unlock()

	room, sched, err := s.Loader.Load(ctx, c.RoomID, models.BookingFilter{Date: c.Date.String()})
	if err != nil {
		return "", err
	}

	decision, err := scheduling.CheckAdmission(c, sched.Existing)
	if err != nil {
		return "", err
	}
	if !decision.Admitted {
		utils.GetLogger().Info("Booking rejected",
			zap.String("roomID", c.RoomID), zap.String("date", c.Date.String()),
			zap.String("reason", string(decision.Reason)), zap.String("conflictWith", decision.ConflictWith))
		return "", decision.Err()
	}

	if err := s.Repo.Create(ctx, booking); err != nil {
		// The unique slot index caught a write the lock did not serialise.
		if errors.Is(err, repository.ErrDuplicate) {
			return "", &scheduling.AdmissionError{Reason: scheduling.BookingConflict}
		}
		return "", err
	}
	return room.Name, nil
}
