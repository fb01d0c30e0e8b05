package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval marks a malformed or zero/negative length interval. It is
	// always a caller bug and must be rejected before any overlap test.
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidWindow   = errors.New("invalid working window")
	ErrInvalidSlotSize = errors.New("invalid slot size")
)

// RejectReason names why an admission check refused a candidate.
type RejectReason string

const (
	MaintenanceConflict RejectReason = "MaintenanceConflict"
	BookingConflict     RejectReason = "BookingConflict"
	TimetableConflict   RejectReason = "TimetableConflict"
)

// Message is the user-facing text for a rejection.
func (r RejectReason) Message() string {
	switch r {
	case MaintenanceConflict:
		return "room is under maintenance on the requested date"
	case BookingConflict:
		return "room is already booked for the requested time"
	case TimetableConflict:
		return "room has a scheduled class at the requested time"
	}
	return string(r)
}

// AdmissionError carries a rejection through service layers that return errors.
// Handlers unwrap it with errors.As and answer 400 with the reason.
type AdmissionError struct {
	Reason       RejectReason
	ConflictWith string
}

func (e *AdmissionError) Error() string {
	if e.ConflictWith == "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Reason.Message())
	}
	return fmt.Sprintf("%s: %s (%s)", e.Reason, e.Reason.Message(), e.ConflictWith)
}
