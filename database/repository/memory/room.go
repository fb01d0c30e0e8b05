package memory

import (
	"context"
	"sort"
	"time"

	"campusportal/database/repository"
	roomRepo "campusportal/database/repository/room"
	"campusportal/models"
)

type RoomRepo struct{ t *table[models.Room] }

var _ roomRepo.RoomRepository = (*RoomRepo)(nil)

func NewRoomRepo() *RoomRepo { return &RoomRepo{t: newTable[models.Room]()} }

func (r *RoomRepo) nameTakenLocked(room models.Room) bool {
	for _, o := range r.t.rows {
		if o.ID != room.ID && o.Name == room.Name {
			return true
		}
	}
	return false
}

func cloneRoom(room models.Room) models.Room {
	room.Features = append([]string(nil), room.Features...)
	room.Maintenance = append([]models.MaintenanceWindow{}, room.Maintenance...)
	return room
}

func (r *RoomRepo) Create(_ context.Context, room *models.Room) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if r.nameTakenLocked(*room) {
		return repository.ErrDuplicate
	}
	now := time.Now()
	room.CreatedAt, room.UpdatedAt = now, now
	if room.Maintenance == nil {
		room.Maintenance = []models.MaintenanceWindow{}
	}
	return r.t.insertLocked(room.ID, cloneRoom(*room))
}

func (r *RoomRepo) Update(_ context.Context, room *models.Room) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	old, ok := r.t.rows[room.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.nameTakenLocked(*room) {
		return repository.ErrDuplicate
	}
	old.Name, old.Building, old.Capacity, old.Features = room.Name, room.Building, room.Capacity, room.Features
	old.UpdatedAt = time.Now()
	r.t.rows[room.ID] = cloneRoom(old)
	return nil
}

func (r *RoomRepo) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *RoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	room, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	room = cloneRoom(room)
	return &room, nil
}

func (r *RoomRepo) GetAll(context.Context) ([]models.Room, error) {
	rooms := r.t.scan(all[models.Room])
	for i := range rooms {
		rooms[i] = cloneRoom(rooms[i])
	}
	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
	return rooms, nil
}

func (r *RoomRepo) AddMaintenance(_ context.Context, id string, w models.MaintenanceWindow) error {
	return r.mutate(id, func(room *models.Room) { room.Maintenance = append(room.Maintenance, w) })
}

func (r *RoomRepo) ReplaceMaintenance(_ context.Context, id string, windows []models.MaintenanceWindow) error {
	return r.mutate(id, func(room *models.Room) { room.Maintenance = windows })
}

func (r *RoomRepo) mutate(id string, fn func(*models.Room)) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	room, ok := r.t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	room = cloneRoom(room)
	fn(&room)
	room.UpdatedAt = time.Now()
	r.t.rows[id] = cloneRoom(room)
	return nil
}

func (r *RoomRepo) EnsureIndexes(context.Context) error { return nil }
