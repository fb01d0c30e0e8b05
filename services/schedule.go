// Package services holds what the per-area services share: loading a room's
// commitments from storage and turning them into scheduling records.
package services

import (
	"context"
	"fmt"
	"time"

	bookingRepo "campusportal/database/repository/booking"
	courseRepo "campusportal/database/repository/course"
	roomRepo "campusportal/database/repository/room"
	timetableRepo "campusportal/database/repository/timetable"
	"campusportal/models"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"go.uber.org/zap"
)

// ScheduleLoader gathers the records the scheduling checks run over. Stored
// records that no longer parse are logged and left out.
type ScheduleLoader struct {
	Rooms      roomRepo.RoomRepository
	Bookings   bookingRepo.BookingRepository
	Timetables timetableRepo.TimetableRepository
	Courses    courseRepo.CourseRepository
	// Now is the clock used for "today". Defaults to time.Now.
	Now func() time.Time
}

// Today is the current civil date on the server clock.
func (l *ScheduleLoader) Today() scheduling.Date {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return scheduling.DateOf(now())
}

// Load fetches a room and its active bookings matching bf, its timetable entries
// and its maintenance windows.
func (l *ScheduleLoader) Load(ctx context.Context, roomID string, bf models.BookingFilter) (*models.Room, scheduling.RoomSchedule, error) {
	room, err := l.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, scheduling.RoomSchedule{}, err
	}

	bf.RoomID = roomID
	bf.ActiveOnly = true
	bookings, err := l.Bookings.Find(ctx, bf)
	if err != nil {
		return nil, scheduling.RoomSchedule{}, err
	}
	entries, err := l.Timetables.Find(ctx, models.TimetableFilter{RoomID: roomID})
	if err != nil {
		return nil, scheduling.RoomSchedule{}, err
	}
	resolved, _, err := l.ResolveEntries(ctx, entries)
	if err != nil {
		return nil, scheduling.RoomSchedule{}, err
	}

	sched := scheduling.RoomSchedule{RoomID: roomID}
	sched.Bookings = ConvertBookings(bookings)
	sched.Entries = resolved
	sched.Maintenance = convertMaintenance(*room)
	return room, sched, nil
}

// LoadAll builds a schedule per room for one date, in room order.
func (l *ScheduleLoader) LoadAll(ctx context.Context, date scheduling.Date) ([]models.Room, []scheduling.RoomSchedule, error) {
	rooms, err := l.Rooms.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	bookings, err := l.Bookings.Find(ctx, models.BookingFilter{Date: date.String(), ActiveOnly: true})
	if err != nil {
		return nil, nil, err
	}
	// Stored day names are not always canonical, so the weekday is matched after parsing.
	entries, err := l.Timetables.Find(ctx, models.TimetableFilter{})
	if err != nil {
		return nil, nil, err
	}
	resolved, _, err := l.ResolveEntries(ctx, entries)
	if err != nil {
		return nil, nil, err
	}
	weekday := date.Weekday()

	byRoom := make(map[string]*scheduling.RoomSchedule, len(rooms))
	schedules := make([]scheduling.RoomSchedule, len(rooms))
	for i, r := range rooms {
		schedules[i] = scheduling.RoomSchedule{RoomID: r.ID}
		schedules[i].Maintenance = convertMaintenance(r)
		byRoom[r.ID] = &schedules[i]
	}
	for _, b := range ConvertBookings(bookings) {
		if s, ok := byRoom[b.RoomID]; ok {
			s.Bookings = append(s.Bookings, b)
		}
	}
	for _, e := range resolved {
		if e.Interval.Day != weekday {
			continue
		}
		if s, ok := byRoom[e.RoomID]; ok {
			s.Entries = append(s.Entries, e)
		}
	}
	return rooms, schedules, nil
}

// ResolveEntries converts stored entries, marking each resolved only when its
// course still exists. Entries whose day or times do not parse are dropped. The
// course lookup is returned for callers that render the entries.
func (l *ScheduleLoader) ResolveEntries(ctx context.Context, entries []models.TimetableEntry) ([]scheduling.TimetableEntry, map[string]models.Course, error) {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.CourseID != "" && !seen[e.CourseID] {
			seen[e.CourseID] = true
			ids = append(ids, e.CourseID)
		}
	}
	courses, err := l.Courses.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve courses: %w", err)
	}

	out := make([]scheduling.TimetableEntry, 0, len(entries))
	for _, e := range entries {
		_, ok := courses[e.CourseID]
		se, err := e.Schedule(ok)
		if err != nil {
			utils.GetLogger().Warn("Skipping unreadable timetable entry", zap.String("entryID", e.ID), zap.Error(err))
			continue
		}
		out = append(out, se)
	}
	return out, courses, nil
}

// OnDay keeps the entries whose stored day parses to day, in any spelling
// ParseWeekday accepts.
func OnDay(entries []models.TimetableEntry, day time.Weekday) []models.TimetableEntry {
	out := make([]models.TimetableEntry, 0, len(entries))
	for _, e := range entries {
		if wd, err := scheduling.ParseWeekday(e.Day); err == nil && wd == day {
			out = append(out, e)
		}
	}
	return out
}

// ConvertBookings converts stored bookings, dropping any that do not parse.
func ConvertBookings(bookings []models.Booking) []scheduling.Booking {
	out := make([]scheduling.Booking, 0, len(bookings))
	for _, b := range bookings {
		sb, err := b.Schedule()
		if err != nil {
			utils.GetLogger().Warn("Skipping unreadable booking", zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		out = append(out, sb)
	}
	return out
}

func convertMaintenance(room models.Room) []scheduling.MaintenanceWindow {
	out := make([]scheduling.MaintenanceWindow, 0, len(room.Maintenance))
	for _, w := range room.Maintenance {
		sw, err := w.Schedule(room.ID)
		if err != nil {
			utils.GetLogger().Warn("Skipping unreadable maintenance window", zap.String("roomID", room.ID), zap.Error(err))
			continue
		}
		out = append(out, sw)
	}
	return out
}
