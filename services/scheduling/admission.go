package scheduling

// Decision is the outcome of an admission check. A rejection is an ordinary value.
type Decision struct {
	Admitted     bool
	Reason       RejectReason
	ConflictWith string
}

func admit() Decision { return Decision{Admitted: true} }

func reject(reason RejectReason, with string) Decision {
	return Decision{Reason: reason, ConflictWith: with}
}

// Err converts a rejection into an *AdmissionError, or nil when admitted.
func (d Decision) Err() error {
	if d.Admitted {
		return nil
	}
	return &AdmissionError{Reason: d.Reason, ConflictWith: d.ConflictWith}
}

// Candidate is a proposed one-off booking.
type Candidate struct {
	RoomID string
	Date   Date
	Start  TimeOfDay
	End    TimeOfDay
	// ExcludeBookingID skips the booking being edited.
	ExcludeBookingID string
}

// Interval returns the candidate's interval on the weekday of its date.
func (c Candidate) Interval() TimeInterval {
	return TimeInterval{Day: c.Date.Weekday(), Start: c.Start, End: c.End}
}

// CheckAdmission decides whether c may be written. Checks run in precedence order
// and the first match wins: maintenance, then bookings on the same date, then
// timetable entries on the derived weekday. Records for other rooms are ignored.
// Only a malformed candidate yields an error.
func CheckAdmission(c Candidate, existing Existing) (Decision, error) {
	iv := c.Interval()
	if err := iv.Validate(); err != nil {
		return Decision{}, err
	}

	for _, w := range existing.Maintenance {
		if w.RoomID == c.RoomID && w.Covers(c.Date) {
			return reject(MaintenanceConflict, w.Start.String()+".."+w.End.String()), nil
		}
	}

	for _, b := range existing.Bookings {
		if b.RoomID != c.RoomID || !b.Active() {
			continue
		}
		if b.ID != "" && b.ID == c.ExcludeBookingID {
			continue
		}
		if b.Date != c.Date || b.Interval.Validate() != nil {
			continue
		}
		if overlaps(iv, b.Interval) {
			return reject(BookingConflict, b.ID), nil
		}
	}

	for _, e := range existing.Entries {
		if e.RoomID != c.RoomID || !e.CourseResolved || e.Interval.Validate() != nil {
			continue
		}
		if overlaps(iv, e.Interval) {
			return reject(TimetableConflict, e.ID), nil
		}
	}

	return admit(), nil
}

// RecurringCandidate is a proposed weekly timetable slot.
type RecurringCandidate struct {
	RoomID   string
	Interval TimeInterval
	// From limits booking checks to dates on or after it; zero checks every date.
	From Date
	// ExcludeEntryID skips the entry being edited.
	ExcludeEntryID string
}

// CheckRecurringAdmission decides whether a weekly slot may be written. It rejects
// with BookingConflict when an active booking on a matching weekday overlaps, then
// with TimetableConflict when another entry for the room overlaps.
func CheckRecurringAdmission(c RecurringCandidate, existing Existing) (Decision, error) {
	if err := c.Interval.Validate(); err != nil {
		return Decision{}, err
	}

	for _, b := range existing.Bookings {
		if b.RoomID != c.RoomID || !b.Active() || b.Interval.Validate() != nil {
			continue
		}
		if !c.From.IsZero() && b.Date.Before(c.From) {
			continue
		}
		if overlaps(c.Interval, b.Interval) {
			return reject(BookingConflict, b.ID), nil
		}
	}

	for _, e := range existing.Entries {
		if e.RoomID != c.RoomID || !e.CourseResolved || e.Interval.Validate() != nil {
			continue
		}
		if e.ID != "" && e.ID == c.ExcludeEntryID {
			continue
		}
		if overlaps(c.Interval, e.Interval) {
			return reject(TimetableConflict, e.ID), nil
		}
	}

	return admit(), nil
}
