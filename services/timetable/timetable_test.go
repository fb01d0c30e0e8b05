package timetable

import (
	"context"
	"testing"
	"time"

	"campusportal/database/repository"
	"campusportal/database/repository/memory"
	"campusportal/models"
	"campusportal/services"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc      *DefaultTimetableService
	repo     *memory.TimetableRepo
	bookings *memory.BookingRepo
	courses  *memory.CourseRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		repo:     memory.NewTimetableRepo(),
		bookings: memory.NewBookingRepo(),
		courses:  memory.NewCourseRepo(),
	}
	rooms := memory.NewRoomRepo()
	loader := &services.ScheduleLoader{
		Rooms: rooms, Bookings: f.bookings, Timetables: f.repo, Courses: f.courses,
		// Saturday 2024-06-01
		Now: func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
	f.svc = NewDefaultTimetableService(f.repo, loader, utils.NewLocalRoomLocker())

	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r1", Name: "Hall 1"}))
	require.NoError(t, rooms.Create(ctx, &models.Room{ID: "r2", Name: "Hall 2"}))
	require.NoError(t, f.courses.Create(ctx, &models.Course{ID: "c1", Code: "CS101", Name: "Intro"}))
	require.NoError(t, f.courses.Create(ctx, &models.Course{ID: "c2", Code: "MA101", Name: "Calculus"}))
	return f
}

func in(room, course, day, start, end string) models.TimetableInput {
	return models.TimetableInput{RoomID: room, CourseID: course, Day: day, Start: start, End: end}
}

func reason(t *testing.T, err error) scheduling.RejectReason {
	t.Helper()
	var ae *scheduling.AdmissionError
	require.ErrorAs(t, err, &ae)
	return ae.Reason
}

func TestCreateEntryNormalisesAndChecks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e, err := f.svc.CreateEntry(ctx, "lec1", in("r1", "c1", "mon", "09:00", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, "Monday", e.Day)
	assert.Equal(t, "lec1", e.CreatedBy)

	_, err = f.svc.CreateEntry(ctx, "lec2", in("r1", "c2", "Monday", "10:00", "12:00"))
	assert.Equal(t, scheduling.TimetableConflict, reason(t, err))

	_, err = f.svc.CreateEntry(ctx, "lec2", in("r1", "c2", "Monday", "11:00", "12:00"))
	assert.NoError(t, err)
	_, err = f.svc.CreateEntry(ctx, "lec2", in("r2", "c2", "Monday", "10:00", "12:00"))
	assert.NoError(t, err)

	_, err = f.svc.CreateEntry(ctx, "lec2", in("r1", "c2", "Funday", "10:00", "12:00"))
	assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)
	_, err = f.svc.CreateEntry(ctx, "lec2", in("r1", "c2", "Tuesday", "12:00", "10:00"))
	assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)
	_, err = f.svc.CreateEntry(ctx, "lec2", in("r1", "nope", "Tuesday", "10:00", "12:00"))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = f.svc.CreateEntry(ctx, "lec2", in("r9", "c1", "Tuesday", "10:00", "12:00"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateEntryChecksUpcomingBookingsOnThatWeekday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.bookings.Create(ctx, &models.Booking{
		ID: "past", RoomID: "r1", Date: "2024-05-27", Day: "Monday", Start: "13:00", End: "14:00", Status: models.BookingConfirmed,
	}))
	require.NoError(t, f.bookings.Create(ctx, &models.Booking{
		ID: "next", RoomID: "r1", Date: "2024-06-03", Day: "Monday", Start: "09:00", End: "10:00", Status: models.BookingPending,
	}))
	require.NoError(t, f.bookings.Create(ctx, &models.Booking{
		ID: "gone", RoomID: "r1", Date: "2024-06-04", Day: "Tuesday", Start: "09:00", End: "10:00", Status: models.BookingCancelled,
	}))

	_, err := f.svc.CreateEntry(ctx, "lec1", in("r1", "c1", "Monday", "09:30", "11:00"))
	assert.Equal(t, scheduling.BookingConflict, reason(t, err))

	_, err = f.svc.CreateEntry(ctx, "lec1", in("r1", "c1", "Monday", "13:00", "14:00"))
	assert.NoError(t, err, "bookings before today are history")

	_, err = f.svc.CreateEntry(ctx, "lec1", in("r1", "c1", "Tuesday", "09:00", "10:00"))
	assert.NoError(t, err, "cancelled bookings never block")
}

func TestUpdateEntryIgnoresItselfAndChecksOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	e, err := f.svc.CreateEntry(ctx, "lec1", in("r1", "c1", "Monday", "09:00", "11:00"))
	require.NoError(t, err)
	_, err = f.svc.CreateEntry(ctx, "lec2", in("r1", "c2", "Monday", "12:00", "13:00"))
	require.NoError(t, err)

	moved, err := f.svc.UpdateEntry(ctx, "lec1", models.RoleLecturer, e.ID, in("r1", "c1", "Monday", "10:00", "12:00"))
	require.NoError(t, err, "overlapping its own old slot is fine")
	assert.Equal(t, "10:00", moved.Start)

	_, err = f.svc.UpdateEntry(ctx, "lec1", models.RoleLecturer, e.ID, in("r1", "c1", "Monday", "11:30", "12:30"))
	assert.Equal(t, scheduling.TimetableConflict, reason(t, err))

	_, err = f.svc.UpdateEntry(ctx, "lec2", models.RoleLecturer, e.ID, in("r1", "c1", "Friday", "10:00", "12:00"))
	assert.ErrorIs(t, err, utils.ErrForbidden)
	_, err = f.svc.UpdateEntry(ctx, "admin", models.RoleAdmin, e.ID, in("r1", "c1", "Friday", "10:00", "12:00"))
	assert.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteEntry(ctx, "lec2", models.RoleLecturer, e.ID), utils.ErrForbidden)
	require.NoError(t, f.svc.DeleteEntry(ctx, "lec1", models.RoleLecturer, e.ID))
	assert.ErrorIs(t, f.svc.DeleteEntry(ctx, "lec1", models.RoleLecturer, e.ID), repository.ErrNotFound)
}

func TestReportSurfacesHistoricalClashes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Written straight to storage, as imported data would be.
	for _, e := range []models.TimetableEntry{
		{ID: "A", RoomID: "r1", CourseID: "c1", Day: "Monday", Start: "09:00", End: "11:00"},
		{ID: "B", RoomID: "r1", CourseID: "c2", Day: "Monday", Start: "10:00", End: "12:00"},
		{ID: "C", RoomID: "r1", CourseID: "c1", Day: "Monday", Start: "10:30", End: "11:30"},
		{ID: "D", RoomID: "r1", CourseID: "dropped", Day: "Monday", Start: "09:00", End: "12:00"},
		{ID: "E", RoomID: "r1", CourseID: "c2", Day: "Tuesday", Start: "09:00", End: "12:00"},
		{ID: "F", RoomID: "r2", CourseID: "c2", Day: "Monday", Start: "09:00", End: "12:00"},
	} {
		e := e
		require.NoError(t, f.repo.Create(ctx, &e))
	}

	report, err := f.svc.GetReport(ctx, models.TimetableFilter{})
	require.NoError(t, err)
	assert.Len(t, report.Timetables, 6)

	pairs := []string{}
	for _, c := range report.Conflicts {
		pairs = append(pairs, c.First.ID+c.Second.ID)
		assert.Equal(t, "r1", c.RoomID)
		assert.Equal(t, "Monday", c.Day)
	}
	assert.Equal(t, []string{"AB", "AC", "BC"}, pairs)

	assert.Equal(t, "Intro", report.Conflicts[0].First.CourseName)
	assert.Equal(t, "Hall 1", report.Conflicts[0].First.RoomName)
	assert.False(t, report.Timetables[3].CourseResolved)

	tuesday, err := f.svc.GetReport(ctx, models.TimetableFilter{Day: "tue"})
	require.NoError(t, err)
	assert.Len(t, tuesday.Timetables, 1)
	assert.Empty(t, tuesday.Conflicts)
	assert.NotNil(t, tuesday.Conflicts)
}

func TestReportDayFilterMatchesAnySpelling(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, e := range []models.TimetableEntry{
		{ID: "A", RoomID: "r1", CourseID: "c1", Day: "monday", Start: "09:00", End: "11:00"},
		{ID: "B", RoomID: "r1", CourseID: "c2", Day: "Mon", Start: "10:00", End: "12:00"},
		{ID: "C", RoomID: "r1", CourseID: "c2", Day: "Tuesday", Start: "10:00", End: "12:00"},
		{ID: "D", RoomID: "r1", CourseID: "c2", Day: "someday", Start: "10:00", End: "12:00"},
	} {
		e := e
		require.NoError(t, f.repo.Create(ctx, &e))
	}

	report, err := f.svc.GetReport(ctx, models.TimetableFilter{Day: "Monday"})
	require.NoError(t, err)
	ids := []string{}
	for _, v := range report.Timetables {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"A", "B"}, ids)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "A", report.Conflicts[0].First.ID)
	assert.Equal(t, "B", report.Conflicts[0].Second.ID)
	assert.Equal(t, "Monday", report.Conflicts[0].Day)
}
