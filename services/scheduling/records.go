package scheduling

// BookingStatus mirrors the stored booking lifecycle.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking is a one-off reservation of a room on a calendar date.
// Interval.Day must equal Date.Weekday(); NewBooking guarantees it.
type Booking struct {
	ID       string
	RoomID   string
	Date     Date
	Interval TimeInterval
	Status   BookingStatus
}

// NewBooking builds a booking with its weekday derived from the date.
func NewBooking(id, roomID string, date Date, start, end TimeOfDay, status BookingStatus) (Booking, error) {
	iv := TimeInterval{Day: date.Weekday(), Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return Booking{}, err
	}
	return Booking{ID: id, RoomID: roomID, Date: date, Interval: iv, Status: status}, nil
}

// Active reports whether the booking still holds the room.
func (b Booking) Active() bool { return b.Status != StatusCancelled }

// TimetableEntry is a weekly recurring class slot.
// CourseResolved is false when the course (or room) link could not be resolved.
type TimetableEntry struct {
	ID             string
	RoomID         string
	CourseID       string
	CourseResolved bool
	Interval       TimeInterval
}

// MaintenanceWindow blocks a room for every date in [Start, End], inclusive.
type MaintenanceWindow struct {
	RoomID string
	Start  Date
	End    Date
}

// Covers reports whether d falls inside the window.
func (w MaintenanceWindow) Covers(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Existing is the set of commitments already recorded for a room.
type Existing struct {
	Bookings    []Booking
	Entries     []TimetableEntry
	Maintenance []MaintenanceWindow
}

// RoomSchedule pairs a room with its own commitments.
type RoomSchedule struct {
	RoomID string
	Existing
}
