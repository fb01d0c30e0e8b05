package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking is a one-off room reservation.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	RoomID    string    `bson:"room_id" json:"roomId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Date      string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Day       string    `bson:"day" json:"day"`     // weekday derived from Date
	Start     string    `bson:"start" json:"start"` // "HH:mm"
	End       string    `bson:"end" json:"end"`     // "HH:mm"
	Purpose   string    `bson:"purpose,omitempty" json:"purpose,omitempty"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the create payload.
type BookingInput struct {
	RoomID  string `json:"roomId" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Purpose string `json:"purpose"`
}

// BookingStatusInput moves a booking through its lifecycle.
type BookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

// ValidBookingTransition reports whether a booking may move from one status to another.
// Cancelled is terminal.
func ValidBookingTransition(from, to string) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCancelled
	}
	return false
}

// BookingFilter narrows booking queries. Empty fields match everything.
type BookingFilter struct {
	RoomID   string `form:"roomId"`
	UserID   string `form:"-"`
	Date     string `form:"date"`
	FromDate string `form:"from"`
	Status   string `form:"status"`
	// ActiveOnly drops cancelled bookings.
	ActiveOnly bool `form:"-"`
}
