package memory

import (
	"context"
	"time"

	"campusportal/database/repository"
	timetableRepo "campusportal/database/repository/timetable"
	"campusportal/models"
)

type TimetableRepo struct{ t *table[models.TimetableEntry] }

var _ timetableRepo.TimetableRepository = (*TimetableRepo)(nil)

func NewTimetableRepo() *TimetableRepo {
	return &TimetableRepo{t: newTable[models.TimetableEntry]()}
}

func (r *TimetableRepo) Create(_ context.Context, e *models.TimetableEntry) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	now := time.Now()
	e.CreatedAt, e.UpdatedAt = now, now
	return r.t.insertLocked(e.ID, *e)
}

func (r *TimetableRepo) Update(_ context.Context, e *models.TimetableEntry) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	old, ok := r.t.rows[e.ID]
	if !ok {
		return repository.ErrNotFound
	}
	e.CreatedAt, e.CreatedBy = old.CreatedAt, old.CreatedBy
	e.UpdatedAt = time.Now()
	r.t.rows[e.ID] = *e
	return nil
}

func (r *TimetableRepo) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *TimetableRepo) GetByID(_ context.Context, id string) (*models.TimetableEntry, error) {
	e, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Find keeps insertion order, matching the created_at sort of the Mongo repository.
func (r *TimetableRepo) Find(_ context.Context, f models.TimetableFilter) ([]models.TimetableEntry, error) {
	return r.t.scan(func(e models.TimetableEntry) bool {
		return (f.RoomID == "" || e.RoomID == f.RoomID) &&
			(f.CourseID == "" || e.CourseID == f.CourseID) &&
			(f.Day == "" || e.Day == f.Day)
	}), nil
}

func (r *TimetableRepo) EnsureIndexes(context.Context) error { return nil }
