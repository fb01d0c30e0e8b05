package memory

import (
	"context"
	"sort"
	"time"

	"campusportal/database/repository"
	courseRepo "campusportal/database/repository/course"
	"campusportal/models"
)

type CourseRepo struct{ t *table[models.Course] }

var _ courseRepo.CourseRepository = (*CourseRepo)(nil)

func NewCourseRepo() *CourseRepo { return &CourseRepo{t: newTable[models.Course]()} }

func (r *CourseRepo) codeTakenLocked(c models.Course) bool {
	for _, o := range r.t.rows {
		if o.ID != c.ID && o.Code == c.Code {
			return true
		}
	}
	return false
}

func (r *CourseRepo) Create(_ context.Context, c *models.Course) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if r.codeTakenLocked(*c) {
		return repository.ErrDuplicate
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	return r.t.insertLocked(c.ID, *c)
}

func (r *CourseRepo) Update(_ context.Context, c *models.Course) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	old, ok := r.t.rows[c.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if r.codeTakenLocked(*c) {
		return repository.ErrDuplicate
	}
	c.CreatedAt = old.CreatedAt
	c.UpdatedAt = time.Now()
	r.t.rows[c.ID] = *c
	return nil
}

func (r *CourseRepo) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *CourseRepo) GetByID(_ context.Context, id string) (*models.Course, error) {
	c, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepo) GetAll(context.Context) ([]models.Course, error) {
	out := r.t.scan(all[models.Course])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *CourseRepo) GetByIDs(_ context.Context, ids []string) (map[string]models.Course, error) {
	r.t.mu.RLock()
	defer r.t.mu.RUnlock()

	out := make(map[string]models.Course, len(ids))
	for _, id := range ids {
		if c, ok := r.t.rows[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (r *CourseRepo) EnsureIndexes(context.Context) error { return nil }
