package memory

import (
	"context"
	"time"

	"campusportal/database/repository"
	boardRepo "campusportal/database/repository/board"
	"campusportal/models"
)

type AnnouncementRepo struct{ t *table[models.Announcement] }

var _ boardRepo.AnnouncementRepository = (*AnnouncementRepo)(nil)

func NewAnnouncementRepo() *AnnouncementRepo {
	return &AnnouncementRepo{t: newTable[models.Announcement]()}
}

func (r *AnnouncementRepo) Create(_ context.Context, a *models.Announcement) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	a.CreatedAt = time.Now()
	return r.t.insertLocked(a.ID, *a)
}

// List returns newest first, capped at 100 like the Mongo repository.
func (r *AnnouncementRepo) List(_ context.Context, audience string) ([]models.Announcement, error) {
	found := r.t.scan(func(a models.Announcement) bool {
		return audience == "" || a.Audience == "" || a.Audience == audience
	})
	out := make([]models.Announcement, 0, len(found))
	for i := len(found) - 1; i >= 0 && len(out) < 100; i-- {
		out = append(out, found[i])
	}
	return out, nil
}

func (r *AnnouncementRepo) Delete(_ context.Context, id string) error { return r.t.delete(id) }

type ReportRepo struct{ t *table[models.MaintenanceReport] }

var _ boardRepo.ReportRepository = (*ReportRepo)(nil)

func NewReportRepo() *ReportRepo { return &ReportRepo{t: newTable[models.MaintenanceReport]()} }

func (r *ReportRepo) Create(_ context.Context, rep *models.MaintenanceReport) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()
	now := time.Now()
	rep.CreatedAt, rep.UpdatedAt = now, now
	return r.t.insertLocked(rep.ID, *rep)
}

func (r *ReportRepo) GetByID(_ context.Context, id string) (*models.MaintenanceReport, error) {
	rep, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepo) List(_ context.Context, status string) ([]models.MaintenanceReport, error) {
	found := r.t.scan(func(rep models.MaintenanceReport) bool { return status == "" || rep.Status == status })
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found, nil
}

func (r *ReportRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	rep, ok := r.t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	rep.Status = status
	rep.UpdatedAt = time.Now()
	r.t.rows[id] = rep
	return nil
}
