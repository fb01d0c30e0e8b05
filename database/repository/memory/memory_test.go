package memory

import (
	"context"
	"testing"

	"campusportal/database/repository"
	"campusportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepoEnforcesActiveSlotUniqueness(t *testing.T) {
	ctx := context.Background()
	r := NewBookingRepo()
	slot := func(id, status string) *models.Booking {
		return &models.Booking{ID: id, RoomID: "r1", Date: "2024-06-03", Start: "09:00", End: "10:00", Status: status}
	}

	require.NoError(t, r.Create(ctx, slot("b1", models.BookingPending)))
	assert.ErrorIs(t, r.Create(ctx, slot("b2", models.BookingConfirmed)), repository.ErrDuplicate)

	require.NoError(t, r.UpdateStatus(ctx, "b1", models.BookingCancelled))
	require.NoError(t, r.Create(ctx, slot("b3", models.BookingPending)))
	require.NoError(t, r.Create(ctx, slot("b4", models.BookingCancelled)))
}

func TestBookingRepoFind(t *testing.T) {
	ctx := context.Background()
	r := NewBookingRepo()
	for _, b := range []models.Booking{
		{ID: "b1", RoomID: "r1", UserID: "u1", Date: "2024-06-04", Start: "09:00", End: "10:00", Status: models.BookingPending},
		{ID: "b2", RoomID: "r1", UserID: "u2", Date: "2024-06-03", Start: "11:00", End: "12:00", Status: models.BookingCancelled},
		{ID: "b3", RoomID: "r2", UserID: "u1", Date: "2024-06-03", Start: "08:00", End: "09:00", Status: models.BookingConfirmed},
	} {
		b := b
		require.NoError(t, r.Create(ctx, &b))
	}

	ids := func(f models.BookingFilter) []string {
		found, err := r.Find(ctx, f)
		require.NoError(t, err)
		out := []string{}
		for _, b := range found {
			out = append(out, b.ID)
		}
		return out
	}

	assert.Equal(t, []string{"b3", "b2", "b1"}, ids(models.BookingFilter{}))
	assert.Equal(t, []string{"b2", "b1"}, ids(models.BookingFilter{RoomID: "r1"}))
	assert.Equal(t, []string{"b1"}, ids(models.BookingFilter{RoomID: "r1", ActiveOnly: true}))
	assert.Equal(t, []string{"b3", "b1"}, ids(models.BookingFilter{UserID: "u1"}))
	assert.Equal(t, []string{"b1"}, ids(models.BookingFilter{FromDate: "2024-06-04"}))
	assert.Equal(t, []string{"b2"}, ids(models.BookingFilter{Status: models.BookingCancelled}))
}

func TestRoomRepoUniqueNameAndMaintenance(t *testing.T) {
	ctx := context.Background()
	r := NewRoomRepo()
	require.NoError(t, r.Create(ctx, &models.Room{ID: "r1", Name: "Lab 1"}))
	assert.ErrorIs(t, r.Create(ctx, &models.Room{ID: "r2", Name: "Lab 1"}), repository.ErrDuplicate)

	require.NoError(t, r.AddMaintenance(ctx, "r1", models.MaintenanceWindow{StartDate: "2024-06-01", EndDate: "2024-06-02"}))
	room, err := r.GetByID(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, room.Maintenance, 1)

	room.Maintenance[0].Reason = "mutated copy"
	again, _ := r.GetByID(ctx, "r1")
	assert.Empty(t, again.Maintenance[0].Reason)

	assert.ErrorIs(t, r.AddMaintenance(ctx, "nope", models.MaintenanceWindow{}), repository.ErrNotFound)
}

func TestUserRepoEmailLookup(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()
	require.NoError(t, r.Create(ctx, &models.User{ID: "u1", Email: "Ada@Campus.edu", PasswordHash: "x"}))
	assert.ErrorIs(t, r.Create(ctx, &models.User{ID: "u2", Email: "ada@campus.edu"}), repository.ErrDuplicate)

	u, err := r.GetByEmail(ctx, "ADA@campus.edu")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u1", u.ID)

	none, err := r.GetByEmail(ctx, "bob@campus.edu")
	assert.NoError(t, err)
	assert.Nil(t, none)

	users, _ := r.GetAll(ctx)
	assert.Empty(t, users[0].PasswordHash)
}

func TestAnnouncementsNewestFirstByAudience(t *testing.T) {
	ctx := context.Background()
	r := NewAnnouncementRepo()
	require.NoError(t, r.Create(ctx, &models.Announcement{ID: "a1"}))
	require.NoError(t, r.Create(ctx, &models.Announcement{ID: "a2", Audience: models.RoleLecturer}))
	require.NoError(t, r.Create(ctx, &models.Announcement{ID: "a3", Audience: models.RoleStudent}))

	list, err := r.List(ctx, models.RoleStudent)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a3", list[0].ID)
	assert.Equal(t, "a1", list[1].ID)
}
