package notification

import (
	"context"
	"fmt"

	userRepo "campusportal/database/repository/user"
	"campusportal/models"
	"campusportal/utils"

	"go.uber.org/zap"
)

// Message is an email to one recipient.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Notifier hands a message off for delivery.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// NotificationService tells users what happened to their bookings.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, booking models.Booking, roomName string)
	NotifyBookingStatus(ctx context.Context, booking models.Booking, roomName string)
}

// DefaultNotificationService resolves recipients and composes the emails. Delivery
// failures are logged and never reach the caller.
type DefaultNotificationService struct {
	Notifier Notifier
	Users    userRepo.UserRepository
}

func NewDefaultNotificationService(n Notifier, users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if n == nil || users == nil {
		return nil, fmt.Errorf("notification service initialization error: notifier or user repository is nil")
	}
	return &DefaultNotificationService{Notifier: n, Users: users}, nil
}

func (s *DefaultNotificationService) NotifyBookingCreated(ctx context.Context, b models.Booking, roomName string) {
	subject := "Booking received"
	if b.Status == models.BookingConfirmed {
		subject = "Booking confirmed"
	}
	s.send(ctx, b.UserID, subject, bookingBody(b, roomName))
}

func (s *DefaultNotificationService) NotifyBookingStatus(ctx context.Context, b models.Booking, roomName string) {
	var subject string
	switch b.Status {
	case models.BookingConfirmed:
		subject = "Booking confirmed"
	case models.BookingCancelled:
		subject = "Booking cancelled"
	default:
		subject = "Booking updated"
	}
	s.send(ctx, b.UserID, subject, bookingBody(b, roomName))
}

func (s *DefaultNotificationService) send(ctx context.Context, userID, subject, body string) {
	logger := utils.GetLogger()

	usr, err := s.Users.GetByID(ctx, userID)
	if err != nil || usr == nil || usr.Email == "" {
		logger.Warn("No recipient for notification", zap.String("userID", userID), zap.Error(err))
		return
	}
	msg := Message{To: usr.Email, Subject: subject, Body: fmt.Sprintf("Hello %s,\n\n%s", usr.Name, body)}
	if err := s.Notifier.Notify(ctx, msg); err != nil {
		logger.Error("Failed to queue notification", zap.String("userID", userID), zap.Error(err))
	}
}

func bookingBody(b models.Booking, roomName string) string {
	if roomName == "" {
		roomName = b.RoomID
	}
	return fmt.Sprintf("Your booking of %s on %s (%s) from %s to %s is now %s.",
		roomName, b.Date, b.Day, b.Start, b.End, b.Status)
}
