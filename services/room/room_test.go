package room

import (
	"context"
	"testing"

	"campusportal/database/repository"
	"campusportal/database/repository/memory"
	"campusportal/models"
	"campusportal/services/scheduling"
	"campusportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomLifecycle(t *testing.T) {
	svc := NewDefaultRoomService(memory.NewRoomRepo())
	ctx := context.Background()

	r, err := svc.CreateRoom(ctx, models.RoomInput{Name: "  Lab 1 ", Capacity: 30})
	require.NoError(t, err)
	assert.Equal(t, "Lab 1", r.Name)
	assert.NotNil(t, r.Maintenance)

	_, err = svc.CreateRoom(ctx, models.RoomInput{Name: "Lab 1"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	_, err = svc.CreateRoom(ctx, models.RoomInput{Name: " "})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	updated, err := svc.UpdateRoom(ctx, r.ID, models.RoomInput{Name: "Lab 1A", Capacity: 40})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.Capacity)

	require.NoError(t, svc.DeleteRoom(ctx, r.ID))
	_, err = svc.GetRoom(ctx, r.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMaintenanceWindowsAreValidated(t *testing.T) {
	svc := NewDefaultRoomService(memory.NewRoomRepo())
	ctx := context.Background()
	r, err := svc.CreateRoom(ctx, models.RoomInput{Name: "Hall"})
	require.NoError(t, err)

	_, err = svc.AddMaintenance(ctx, r.ID, models.MaintenanceWindow{StartDate: "2024-06-05", EndDate: "2024-06-01"})
	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)
	_, err = svc.AddMaintenance(ctx, r.ID, models.MaintenanceWindow{StartDate: "June 1", EndDate: "2024-06-01"})
	assert.ErrorIs(t, err, scheduling.ErrInvalidDate)

	withOne, err := svc.AddMaintenance(ctx, r.ID, models.MaintenanceWindow{StartDate: "2024-06-01", EndDate: "2024-06-01", Reason: "paint"})
	require.NoError(t, err)
	assert.Len(t, withOne.Maintenance, 1)

	cleared, err := svc.ReplaceMaintenance(ctx, r.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, cleared.Maintenance)
}
