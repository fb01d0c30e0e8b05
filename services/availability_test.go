package services

import (
	"context"
	"testing"

	"campusportal/database/repository"
	"campusportal/database/repository/memory"
	"campusportal/models"
	"campusportal/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvailability(t *testing.T) (*DefaultAvailabilityService, *ScheduleLoader) {
	t.Helper()
	ctx := context.Background()
	loader := &ScheduleLoader{
		Rooms:      memory.NewRoomRepo(),
		Bookings:   memory.NewBookingRepo(),
		Timetables: memory.NewTimetableRepo(),
		Courses:    memory.NewCourseRepo(),
	}
	require.NoError(t, loader.Rooms.Create(ctx, &models.Room{ID: "r1", Name: "Alpha"}))
	require.NoError(t, loader.Rooms.Create(ctx, &models.Room{ID: "r2", Name: "Beta"}))
	require.NoError(t, loader.Courses.Create(ctx, &models.Course{ID: "c1", Code: "CS101"}))

	// 2024-06-03 is a Monday.
	for _, b := range []models.Booking{
		{ID: "b1", RoomID: "r1", Date: "2024-06-03", Start: "09:00", End: "10:00", Status: models.BookingConfirmed},
		{ID: "b2", RoomID: "r1", Date: "2024-06-03", Start: "10:00", End: "11:00", Status: models.BookingCancelled},
		{ID: "b3", RoomID: "r1", Date: "2024-06-04", Start: "12:00", End: "13:00", Status: models.BookingPending},
	} {
		b := b
		require.NoError(t, loader.Bookings.Create(ctx, &b))
	}
	for _, e := range []models.TimetableEntry{
		{ID: "t1", RoomID: "r1", CourseID: "c1", Day: "Monday", Start: "14:00", End: "15:30"},
		{ID: "t2", RoomID: "r1", CourseID: "gone", Day: "Monday", Start: "16:00", End: "17:00"},
		{ID: "t3", RoomID: "r1", CourseID: "c1", Day: "Tuesday", Start: "08:00", End: "17:00"},
		{ID: "t4", RoomID: "r1", CourseID: "c1", Day: "Monday", Start: "nine", End: "ten"},
	} {
		e := e
		require.NoError(t, loader.Timetables.Create(ctx, &e))
	}

	return &DefaultAvailabilityService{Loader: loader, Window: scheduling.DefaultDayWindow(), SlotMinutes: 30}, loader
}

func starts(slots []models.SlotView) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start)
	}
	return out
}

func TestRoomAvailability(t *testing.T) {
	svc, _ := newAvailability(t)

	got, err := svc.GetRoomAvailability(context.Background(), "r1", "2024-06-03", 0)
	require.NoError(t, err)
	assert.Equal(t, "Monday", got.Day)
	assert.Equal(t, "Alpha", got.RoomName)
	assert.Equal(t, []string{
		"08:00", "08:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"15:30", "16:00", "16:30",
	}, starts(got.Slots))

	hourly, err := svc.GetRoomAvailability(context.Background(), "r2", "2024-06-03", 60)
	require.NoError(t, err)
	assert.Len(t, hourly.Slots, 9)
}

func TestRoomAvailabilityErrors(t *testing.T) {
	svc, _ := newAvailability(t)
	ctx := context.Background()

	_, err := svc.GetRoomAvailability(ctx, "r1", "2024-13-01", 0)
	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)
	_, err = svc.GetRoomAvailability(ctx, "r1", "2024-06-03", -15)
	assert.ErrorIs(t, err, scheduling.ErrInvalidSlotSize)
	_, err = svc.GetRoomAvailability(ctx, "zz", "2024-06-03", 0)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAllRoomsAvailabilityAndMaintenance(t *testing.T) {
	svc, loader := newAvailability(t)
	ctx := context.Background()
	require.NoError(t, loader.Rooms.AddMaintenance(ctx, "r2", models.MaintenanceWindow{StartDate: "2024-06-03", EndDate: "2024-06-07"}))

	all, err := svc.GetAllAvailability(ctx, "2024-06-03", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r1", all[0].RoomID)
	assert.Len(t, all[0].Slots, 13)
	assert.Equal(t, "r2", all[1].RoomID)
	assert.NotNil(t, all[1].Slots)
	assert.Empty(t, all[1].Slots)

	tuesday, err := svc.GetAllAvailability(ctx, "2024-06-04", 0)
	require.NoError(t, err)
	assert.Empty(t, tuesday[0].Slots, "the Tuesday class fills the day")
}

func TestAvailabilityMatchesStoredDayInAnySpelling(t *testing.T) {
	svc, loader := newAvailability(t)
	ctx := context.Background()
	require.NoError(t, loader.Timetables.Create(ctx, &models.TimetableEntry{
		ID: "t5", RoomID: "r2", CourseID: "c1", Day: "monday", Start: "08:00", End: "17:00",
	}))

	single, err := svc.GetRoomAvailability(ctx, "r2", "2024-06-03", 0)
	require.NoError(t, err)
	assert.Empty(t, single.Slots)

	all, err := svc.GetAllAvailability(ctx, "2024-06-03", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r2", all[1].RoomID)
	assert.Empty(t, all[1].Slots)
	assert.Len(t, all[0].Slots, 13)

	tuesday, err := svc.GetAllAvailability(ctx, "2024-06-04", 0)
	require.NoError(t, err)
	assert.Len(t, tuesday[1].Slots, 18)
}
