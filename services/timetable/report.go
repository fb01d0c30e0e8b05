package timetable

import (
	"context"
	"time"

	"campusportal/models"
	"campusportal/services"
	"campusportal/services/scheduling"
)

// GetReport lists the entries matching filter together with every pair of them
// that holds the same room at overlapping times. Entries whose course or room
// no longer exists are listed but never reported as clashing.
func (s *DefaultTimetableService) GetReport(ctx context.Context, filter models.TimetableFilter) (*models.TimetableReport, error) {
	var day time.Weekday
	byDay := filter.Day != ""
	if byDay {
		var err error
		if day, err = scheduling.ParseWeekday(filter.Day); err != nil {
			return nil, err
		}
		filter.Day = ""
	}

	entries, err := s.Repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if byDay {
		entries = services.OnDay(entries, day)
	}
	resolved, courses, err := s.Loader.ResolveEntries(ctx, entries)
	if err != nil {
		return nil, err
	}
	rooms, err := s.Loader.Rooms.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	roomNames := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = r.Name
	}

	views := make([]models.TimetableView, 0, len(entries))
	byID := make(map[string]models.TimetableView, len(entries))
	for _, e := range entries {
		v := models.TimetableView{TimetableEntry: e, RoomName: roomNames[e.RoomID]}
		if c, ok := courses[e.CourseID]; ok {
			_, roomOK := roomNames[e.RoomID]
			v.CourseCode, v.CourseName, v.CourseResolved = c.Code, c.Name, roomOK
		}
		views = append(views, v)
		byID[e.ID] = v
	}

	for i := range resolved {
		if _, ok := roomNames[resolved[i].RoomID]; !ok {
			resolved[i].CourseResolved = false
		}
	}

	conflicts := []models.TimetableConflict{}
	for _, p := range scheduling.FindConflicts(resolved) {
		conflicts = append(conflicts, models.TimetableConflict{
			RoomID: p.First.RoomID,
			Day:    p.First.Interval.Day.String(),
			First:  byID[p.First.ID],
			Second: byID[p.Second.ID],
		})
	}
	return &models.TimetableReport{Timetables: views, Conflicts: conflicts}, nil
}
