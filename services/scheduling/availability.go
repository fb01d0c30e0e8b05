package scheduling

import (
	"fmt"
	"time"
)

// DefaultSlotMinutes is used when a caller passes a zero slot size.
const DefaultSlotMinutes = 30

// DayWindow is the working-hours range that availability is reported within.
type DayWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// DefaultDayWindow is 08:00-17:00.
func DefaultDayWindow() DayWindow {
	return DayWindow{Start: 8 * 60, End: 17 * 60}
}

func (w DayWindow) Validate() error {
	if w.Start < 0 || w.End > EndOfDay || w.Start >= w.End {
		return fmt.Errorf("%w: %s-%s", ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

// Slots partitions the window into contiguous slotMinutes-long intervals starting
// at the window's lower bound. A trailing slot that would cross the upper bound is
// dropped.
func Slots(day time.Weekday, w DayWindow, slotMinutes int) ([]TimeInterval, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if slotMinutes == 0 {
		slotMinutes = DefaultSlotMinutes
	}
	if slotMinutes < 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotSize, slotMinutes)
	}
	step := TimeOfDay(slotMinutes)
	slots := make([]TimeInterval, 0, int(w.End-w.Start)/slotMinutes)
	for start := w.Start; start+step <= w.End; start += step {
		slots = append(slots, TimeInterval{Day: day, Start: start, End: start + step})
	}
	return slots, nil
}

// AvailableSlots lists the free slots of room on date. A slot is dropped when it
// overlaps an active booking on that date or a resolved timetable entry on the
// date's weekday; every slot is dropped when a maintenance window covers the date.
// A fully blocked day yields an empty, non-nil slice.
func AvailableSlots(room RoomSchedule, date Date, slotMinutes int, w DayWindow) ([]TimeInterval, error) {
	candidates, err := Slots(date.Weekday(), w, slotMinutes)
	if err != nil {
		return nil, err
	}

	for _, mw := range room.Maintenance {
		if mw.RoomID == room.RoomID && mw.Covers(date) {
			return []TimeInterval{}, nil
		}
	}

	var blockers []TimeInterval
	for _, b := range room.Bookings {
		if b.RoomID == room.RoomID && b.Active() && b.Date == date && b.Interval.Validate() == nil {
			blockers = append(blockers, b.Interval)
		}
	}
	for _, e := range room.Entries {
		if e.RoomID == room.RoomID && e.CourseResolved && e.Interval.Validate() == nil {
			blockers = append(blockers, e.Interval)
		}
	}

	free := make([]TimeInterval, 0, len(candidates))
	for _, slot := range candidates {
		if !blockedBy(slot, blockers) {
			free = append(free, slot)
		}
	}
	return free, nil
}

func blockedBy(slot TimeInterval, blockers []TimeInterval) bool {
	for _, b := range blockers {
		if overlaps(slot, b) {
			return true
		}
	}
	return false
}

// RoomAvailability is one room's share of a multi-room availability query.
type RoomAvailability struct {
	RoomID string
	Slots  []TimeInterval
}

// AvailableSlotsForRooms runs AvailableSlots for each room against only that
// room's own records, keeping input order.
func AvailableSlotsForRooms(rooms []RoomSchedule, date Date, slotMinutes int, w DayWindow) ([]RoomAvailability, error) {
	out := make([]RoomAvailability, 0, len(rooms))
	for _, r := range rooms {
		slots, err := AvailableSlots(r, date, slotMinutes, w)
		if err != nil {
			return nil, err
		}
		out = append(out, RoomAvailability{RoomID: r.RoomID, Slots: slots})
	}
	return out, nil
}
