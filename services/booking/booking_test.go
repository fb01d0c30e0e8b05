package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"campusportal/database/repository"
	"campusportal/database/repository/memory"
	"campusportal/models"
	"campusportal/services"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedNotifications struct {
	mu      sync.Mutex
	created []models.Booking
	status  []models.Booking
}

func (r *recordedNotifications) NotifyBookingCreated(_ context.Context, b models.Booking, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, b)
}

func (r *recordedNotifications) NotifyBookingStatus(_ context.Context, b models.Booking, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = append(r.status, b)
}

// noLock lets every caller through at once, leaving only the unique slot index.
type noLock struct{}

func (noLock) Lock(context.Context, string) (func(), error) { return func() {}, nil }

type fixture struct {
	svc        *DefaultBookingService
	rooms      *memory.RoomRepo
	timetables *memory.TimetableRepo
	courses    *memory.CourseRepo
	notes      *recordedNotifications
}

func newFixture(t *testing.T, locker utils.RoomLocker) *fixture {
	t.Helper()
	f := &fixture{
		rooms:      memory.NewRoomRepo(),
		timetables: memory.NewTimetableRepo(),
		courses:    memory.NewCourseRepo(),
		notes:      &recordedNotifications{},
	}
	bookings := memory.NewBookingRepo()
	loader := &services.ScheduleLoader{Rooms: f.rooms, Bookings: bookings, Timetables: f.timetables, Courses: f.courses}
	f.svc = NewDefaultBookingService(bookings, loader, locker, f.notes)

	ctx := context.Background()
	require.NoError(t, f.rooms.Create(ctx, &models.Room{ID: "lab1", Name: "Lab 1"}))
	require.NoError(t, f.rooms.Create(ctx, &models.Room{ID: "lab2", Name: "Lab 2"}))
	return f
}

// 2024-06-03 is a Monday.
func input(room, start, end string) models.BookingInput {
	return models.BookingInput{RoomID: room, Date: "2024-06-03", Start: start, End: end}
}

func rejection(t *testing.T, err error) scheduling.RejectReason {
	t.Helper()
	var ae *scheduling.AdmissionError
	require.ErrorAs(t, err, &ae)
	return ae.Reason
}

func TestCreateBookingAdmitsAndNotifies(t *testing.T) {
	f := newFixture(t, utils.NewLocalRoomLocker())
	ctx := context.Background()

	b, err := f.svc.CreateBooking(ctx, "u1", models.RoleStudent, input("lab1", "09:00", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "Monday", b.Day)

	admin, err := f.svc.CreateBooking(ctx, "a1", models.RoleAdmin, input("lab1", "10:00", "11:00"))
	require.NoError(t, err, "touching intervals do not overlap")
	assert.Equal(t, models.BookingConfirmed, admin.Status)

	assert.Len(t, f.notes.created, 2)
}

func TestCreateBookingRejectsMalformedInput(t *testing.T) {
	f := newFixture(t, utils.NewLocalRoomLocker())
	ctx := context.Background()

	_, err := f.svc.CreateBooking(ctx, "u1", models.RoleStudent, input("lab1", "10:00", "10:00"))
	assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)

	_, err = f.svc.CreateBooking(ctx, "u1", models.RoleStudent, input("lab1", "9am", "10:00"))
	assert.ErrorIs(t, err, scheduling.ErrInvalidInterval)

	bad := input("lab1", "09:00", "10:00")
	bad.Date = "03/06/2024"
	_, err = f.svc.CreateBooking(ctx, "u1", models.RoleStudent, bad)
	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)

	_, err = f.svc.CreateBooking(ctx, "u1", models.RoleStudent, input("nowhere", "09:00", "10:00"))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Empty(t, f.notes.created)
}

func TestCreateBookingRejections(t *testing.T) {
	f := newFixture(t, utils.NewLocalRoomLocker())
	ctx := context.Background()

	require.NoError(t, f.courses.Create(ctx, &models.Course{ID: "c1", Code: "CS101"}))
	require.NoError(t, f.timetables.Create(ctx, &models.TimetableEntry{
		ID: "t1", RoomID: "lab1", CourseID: "c1", Day: "Monday", Start: "13:00", End: "15:00",
	}))
	require.NoError(t, f.timetables.Create(ctx, &models.TimetableEntry{
		ID: "t2", RoomID: "lab1", CourseID: "deleted-course", Day: "Monday", Start: "16:00", End: "17:00",
	}))
	_, err := f.svc.CreateBooking(ctx, "u1", models.RoleStudent, input("lab1", "09:00", "10:00"))
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(ctx, "u2", models.RoleStudent, input("lab1", "09:30", "10:30"))
	assert.Equal(t, scheduling.BookingConflict, rejection(t, err))

	_, err = f.svc.CreateBooking(ctx, "u2", models.RoleStudent, input("lab1", "14:00", "14:30"))
	assert.Equal(t, scheduling.TimetableConflict, rejection(t, err))

	_, err = f.svc.CreateBooking(ctx, "u2", models.RoleStudent, input("lab1", "16:00", "16:30"))
	assert.NoError(t, err, "entries with an unresolved course do not block")

	_, err = f.svc.CreateBooking(ctx, "u2", models.RoleStudent, input("lab2", "09:30", "10:30"))
	assert.NoError(t, err, "other rooms are independent")

	require.NoError(t, f.rooms.AddMaintenance(ctx, "lab2", models.MaintenanceWindow{StartDate: "2024-06-01", EndDate: "2024-06-03"}))
	_, err = f.svc.CreateBooking(ctx, "u2", models.RoleStudent, input("lab2", "09:30", "10:30"))
	assert.Equal(t, scheduling.MaintenanceConflict, rejection(t, err), "maintenance wins over the booking conflict")
}

func concurrentCreates(t *testing.T, svc *DefaultBookingService, n int) (successes int, conflicts int) {
	var wg sync.WaitGroup
	errs := make([]error, n)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.CreateBooking(context.Background(), "u", models.RoleStudent, input("lab1", "09:00", "10:00"))
		}(i)
	}
	close(start)
	wg.Wait()

	for _, err := range errs {
		var ae *scheduling.AdmissionError
		switch {
		case err == nil:
			successes++
		case errors.As(err, &ae) && ae.Reason == scheduling.BookingConflict:
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	return successes, conflicts
}

func TestConcurrentCreatesAdmitExactlyOne(t *testing.T) {
	f := newFixture(t, utils.NewLocalRoomLocker())
	ok, rejected := concurrentCreates(t, f.svc, 32)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 31, rejected)

	found, err := f.svc.ListBookings(context.Background(), models.BookingFilter{RoomID: "lab1"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestUniqueSlotIndexBacksUpTheLock(t *testing.T) {
	f := newFixture(t, noLock{})
	ok, rejected := concurrentCreates(t, f.svc, 32)
	assert.Equal(t, 1, ok)
	assert.Equal(t, 31, rejected)
}

func TestUpdateBookingStatus(t *testing.T) {
	f := newFixture(t, utils.NewLocalRoomLocker())
	ctx := context.Background()

	b, err := f.svc.CreateBooking(ctx, "owner", models.RoleStudent, input("lab1", "09:00", "10:00"))
	require.NoError(t, err)

	_, err = f.svc.UpdateBookingStatus(ctx, "owner", models.RoleStudent, b.ID, models.BookingConfirmed)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	_, err = f.svc.UpdateBookingStatus(ctx, "stranger", models.RoleStudent, b.ID, models.BookingCancelled)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	confirmed, err := f.svc.UpdateBookingStatus(ctx, "a1", models.RoleAdmin, b.ID, models.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)

	cancelled, err := f.svc.UpdateBookingStatus(ctx, "owner", models.RoleStudent, b.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)

	_, err = f.svc.UpdateBookingStatus(ctx, "a1", models.RoleAdmin, b.ID, models.BookingConfirmed)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition, "cancelled is terminal")

	_, err = f.svc.CreateBooking(ctx, "other", models.RoleStudent, input("lab1", "09:00", "10:00"))
	assert.NoError(t, err, "a cancelled booking frees its slot")

	assert.Len(t, f.notes.status, 2)
}

func TestListBookingsValidatesFilter(t *testing.T) {
	f := newFixture(t, utils.NewLocalRoomLocker())
	ctx := context.Background()

	_, err := f.svc.ListBookings(ctx, models.BookingFilter{Date: "tomorrow"})
	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)
	_, err = f.svc.ListBookings(ctx, models.BookingFilter{Status: "approved"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = f.svc.CreateBooking(ctx, "u1", models.RoleStudent, input("lab1", "09:00", "10:00"))
	require.NoError(t, err)
	mine, err := f.svc.GetUserBookings(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}
