package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(room, day, start, end string) Candidate {
	return Candidate{RoomID: room, Date: date(day), Start: MustTimeOfDay(start), End: MustTimeOfDay(end)}
}

func booking(id, room, day, start, end string, status BookingStatus) Booking {
	b, err := NewBooking(id, room, date(day), MustTimeOfDay(start), MustTimeOfDay(end), status)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCheckAdmission(t *testing.T) {
	// 2024-01-01 is a Monday.
	existing := Existing{
		Bookings: []Booking{
			booking("b1", "R101", "2024-01-01", "09:00", "10:00", StatusConfirmed),
			booking("b2", "R101", "2024-01-01", "13:00", "14:00", StatusCancelled),
			booking("b3", "R202", "2024-01-01", "15:00", "16:00", StatusPending),
		},
		Entries: []TimetableEntry{
			entry("t1", "R101", time.Monday, "11:00", "12:00"),
			{ID: "t2", RoomID: "R101", CourseID: "gone", Interval: iv(time.Monday, "16:00", "17:00")},
		},
		Maintenance: []MaintenanceWindow{
			{RoomID: "R101", Start: date("2024-01-10"), End: date("2024-01-12")},
			{RoomID: "R202", Start: date("2024-01-01"), End: date("2024-01-01")},
		},
	}

	tests := []struct {
		name   string
		c      Candidate
		reason RejectReason
		with   string
	}{
		{name: "free slot", c: candidate("R101", "2024-01-01", "10:00", "11:00")},
		{name: "overlapping booking", c: candidate("R101", "2024-01-01", "09:30", "10:30"), reason: BookingConflict, with: "b1"},
		{name: "cancelled booking ignored", c: candidate("R101", "2024-01-01", "13:00", "14:00")},
		{name: "same time other date", c: candidate("R101", "2024-01-02", "09:00", "10:00")},
		{name: "timetable on weekday", c: candidate("R101", "2024-01-08", "11:30", "12:30"), reason: TimetableConflict, with: "t1"},
		{name: "unresolved entry ignored", c: candidate("R101", "2024-01-01", "16:00", "17:00")},
		{name: "maintenance first day", c: candidate("R101", "2024-01-10", "08:00", "09:00"), reason: MaintenanceConflict},
		{name: "maintenance last day", c: candidate("R101", "2024-01-12", "08:00", "09:00"), reason: MaintenanceConflict},
		{name: "after maintenance", c: candidate("R101", "2024-01-13", "08:00", "09:00")},
		{name: "other room maintenance ignored", c: candidate("R101", "2024-01-01", "08:00", "09:00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := CheckAdmission(tt.c, existing)
			require.NoError(t, err)
			if tt.reason == "" {
				assert.True(t, d.Admitted, "got %+v", d)
				assert.NoError(t, d.Err())
				return
			}
			assert.False(t, d.Admitted)
			assert.Equal(t, tt.reason, d.Reason)
			if tt.with != "" {
				assert.Equal(t, tt.with, d.ConflictWith)
			}
		})
	}
}

func TestCheckAdmissionMaintenanceTakesPrecedence(t *testing.T) {
	existing := Existing{
		Bookings:    []Booking{booking("b1", "R101", "2024-01-01", "09:00", "10:00", StatusConfirmed)},
		Entries:     []TimetableEntry{entry("t1", "R101", time.Monday, "09:00", "10:00")},
		Maintenance: []MaintenanceWindow{{RoomID: "R101", Start: date("2023-12-30"), End: date("2024-01-02")}},
	}
	d, err := CheckAdmission(candidate("R101", "2024-01-01", "09:00", "10:00"), existing)
	require.NoError(t, err)
	assert.Equal(t, MaintenanceConflict, d.Reason)

	existing.Maintenance = nil
	d, err = CheckAdmission(candidate("R101", "2024-01-01", "09:00", "10:00"), existing)
	require.NoError(t, err)
	assert.Equal(t, BookingConflict, d.Reason, "booking outranks timetable")
}

func TestCheckAdmissionRejectionIsStable(t *testing.T) {
	existing := Existing{Bookings: []Booking{booking("b1", "R101", "2024-01-01", "09:00", "10:00", StatusPending)}}
	c := candidate("R101", "2024-01-01", "09:00", "10:00")

	first, err := CheckAdmission(c, existing)
	require.NoError(t, err)
	second, err := CheckAdmission(c, existing)
	require.NoError(t, err)
	assert.False(t, first.Admitted)
	assert.Equal(t, first, second)
}

func TestCheckAdmissionExcludesEditedBooking(t *testing.T) {
	existing := Existing{Bookings: []Booking{booking("b1", "R101", "2024-01-01", "09:00", "10:00", StatusPending)}}
	c := candidate("R101", "2024-01-01", "09:30", "10:30")
	c.ExcludeBookingID = "b1"

	d, err := CheckAdmission(c, existing)
	require.NoError(t, err)
	assert.True(t, d.Admitted)
}

func TestCheckAdmissionInvalidCandidate(t *testing.T) {
	c := candidate("R101", "2024-01-01", "10:00", "10:00")
	_, err := CheckAdmission(c, Existing{})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestDecisionErr(t *testing.T) {
	d := Decision{Reason: TimetableConflict, ConflictWith: "t9"}
	var ae *AdmissionError
	require.True(t, errors.As(d.Err(), &ae))
	assert.Equal(t, TimetableConflict, ae.Reason)
	assert.Contains(t, ae.Error(), "t9")
}

func TestCheckRecurringAdmission(t *testing.T) {
	existing := Existing{
		Bookings: []Booking{
			booking("past", "R101", "2023-12-25", "09:00", "10:00", StatusConfirmed),
			booking("future", "R101", "2024-01-15", "14:00", "15:00", StatusPending),
			booking("cancelled", "R101", "2024-01-15", "16:00", "17:00", StatusCancelled),
		},
		Entries: []TimetableEntry{
			entry("t1", "R101", time.Monday, "11:00", "12:00"),
			entry("t2", "R102", time.Monday, "12:00", "13:00"),
		},
	}
	from := date("2024-01-01")

	tests := []struct {
		name    string
		iv      TimeInterval
		exclude string
		reason  RejectReason
	}{
		{name: "past booking ignored", iv: iv(time.Monday, "09:00", "10:00")},
		{name: "future booking on weekday", iv: iv(time.Monday, "14:30", "15:30"), reason: BookingConflict},
		{name: "future booking other weekday", iv: iv(time.Tuesday, "14:30", "15:30")},
		{name: "cancelled ignored", iv: iv(time.Monday, "16:00", "17:00")},
		{name: "other entry", iv: iv(time.Monday, "11:30", "12:30"), reason: TimetableConflict},
		{name: "editing itself", iv: iv(time.Monday, "11:30", "12:30"), exclude: "t1"},
		{name: "other room entry ignored", iv: iv(time.Monday, "12:00", "13:00")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := CheckRecurringAdmission(RecurringCandidate{RoomID: "R101", Interval: tt.iv, From: from, ExcludeEntryID: tt.exclude}, existing)
			require.NoError(t, err)
			assert.Equal(t, tt.reason == "", d.Admitted, "%+v", d)
			assert.Equal(t, tt.reason, d.Reason)
		})
	}
}
