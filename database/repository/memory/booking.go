package memory

import (
	"context"
	"sort"
	"time"

	"campusportal/database/repository"
	bookingRepo "campusportal/database/repository/booking"
	"campusportal/models"
)

// BookingRepo mirrors the active_slot_unique index: two pending or confirmed
// bookings may not share room, date, start and end.
type BookingRepo struct{ t *table[models.Booking] }

var _ bookingRepo.BookingRepository = (*BookingRepo)(nil)

func NewBookingRepo() *BookingRepo { return &BookingRepo{t: newTable[models.Booking]()} }

func active(status string) bool {
	return status == models.BookingPending || status == models.BookingConfirmed
}

func sameSlot(a, b models.Booking) bool {
	return a.RoomID == b.RoomID && a.Date == b.Date && a.Start == b.Start && a.End == b.End
}

func (r *BookingRepo) slotTakenLocked(b models.Booking) bool {
	if !active(b.Status) {
		return false
	}
	for _, id := range r.t.order {
		o := r.t.rows[id]
		if o.ID != b.ID && active(o.Status) && sameSlot(o, b) {
			return true
		}
	}
	return false
}

func (r *BookingRepo) Create(_ context.Context, b *models.Booking) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	if r.slotTakenLocked(*b) {
		return repository.ErrDuplicate
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	return r.t.insertLocked(b.ID, *b)
}

func (r *BookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	b, ok := r.t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	b.Status = status
	if r.slotTakenLocked(b) {
		return repository.ErrDuplicate
	}
	b.UpdatedAt = time.Now()
	r.t.rows[id] = b
	return nil
}

func (r *BookingRepo) Find(_ context.Context, f models.BookingFilter) ([]models.Booking, error) {
	out := r.t.scan(func(b models.Booking) bool {
		switch {
		case f.RoomID != "" && b.RoomID != f.RoomID,
			f.UserID != "" && b.UserID != f.UserID,
			f.Date != "" && b.Date != f.Date,
			f.Date == "" && f.FromDate != "" && b.Date < f.FromDate,
			f.Status != "" && b.Status != f.Status,
			f.Status == "" && f.ActiveOnly && !active(b.Status):
			return false
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Start < out[j].Start
	})
	return out, nil
}

func (r *BookingRepo) EnsureIndexes(context.Context) error { return nil }
