package models

import (
	"campusportal/services/scheduling"
)

// Schedule converts a stored booking into its scheduling form.
func (b Booking) Schedule() (scheduling.Booking, error) {
	d, err := scheduling.ParseDate(b.Date)
	if err != nil {
		return scheduling.Booking{}, err
	}
	start, err := scheduling.ParseTimeOfDay(b.Start)
	if err != nil {
		return scheduling.Booking{}, err
	}
	end, err := scheduling.ParseTimeOfDay(b.End)
	if err != nil {
		return scheduling.Booking{}, err
	}
	return scheduling.NewBooking(b.ID, b.RoomID, d, start, end, scheduling.BookingStatus(b.Status))
}

// Schedule converts a stored entry. resolved says whether its course link resolved.
func (e TimetableEntry) Schedule(resolved bool) (scheduling.TimetableEntry, error) {
	day, err := scheduling.ParseWeekday(e.Day)
	if err != nil {
		return scheduling.TimetableEntry{}, err
	}
	iv, err := scheduling.NewInterval(day, e.Start, e.End)
	if err != nil {
		return scheduling.TimetableEntry{}, err
	}
	return scheduling.TimetableEntry{
		ID:             e.ID,
		RoomID:         e.RoomID,
		CourseID:       e.CourseID,
		CourseResolved: resolved,
		Interval:       iv,
	}, nil
}

// Schedule validates the window's dates and converts it.
func (w MaintenanceWindow) Schedule(roomID string) (scheduling.MaintenanceWindow, error) {
	start, err := scheduling.ParseDate(w.StartDate)
	if err != nil {
		return scheduling.MaintenanceWindow{}, err
	}
	end, err := scheduling.ParseDate(w.EndDate)
	if err != nil {
		return scheduling.MaintenanceWindow{}, err
	}
	if end.Before(start) {
		return scheduling.MaintenanceWindow{}, scheduling.ErrInvalidDate
	}
	return scheduling.MaintenanceWindow{RoomID: roomID, Start: start, End: end}, nil
}

// SlotViews renders scheduling intervals for the API.
func SlotViews(slots []scheduling.TimeInterval) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotView{Start: s.Start.String(), End: s.End.String()})
	}
	return out
}
