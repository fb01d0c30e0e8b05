package memory

import (
	"context"
	"strings"
	"time"

	"campusportal/database/repository"
	userRepo "campusportal/database/repository/user"
	"campusportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type UserRepo struct{ t *table[models.User] }

var _ userRepo.UserRepository = (*UserRepo)(nil)

func NewUserRepo() *UserRepo { return &UserRepo{t: newTable[models.User]()} }

func (r *UserRepo) Create(_ context.Context, u *models.User) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	for _, o := range r.t.rows {
		if o.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	return r.t.insertLocked(u.ID, *u)
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, err := r.t.get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail returns nil, nil when no account uses the address.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)
	found := r.t.scan(func(u models.User) bool { return u.Email == email })
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (r *UserRepo) GetAll(context.Context) ([]models.User, error) {
	users := r.t.scan(all[models.User])
	for i := range users {
		users[i].PasswordHash, users[i].TokenHash = "", ""
	}
	return users, nil
}

// GetByIDWithProjection ignores the projection and returns the full document.
func (r *UserRepo) GetByIDWithProjection(ctx context.Context, id string, _ bson.M) (*models.User, error) {
	return r.GetByID(ctx, id)
}

func (r *UserRepo) UpdateRole(_ context.Context, id, role string) error {
	return r.set(id, func(u *models.User) { u.Role = role })
}

func (r *UserRepo) SetTokenHash(_ context.Context, id, hash string) error {
	return r.set(id, func(u *models.User) { u.TokenHash = hash })
}

func (r *UserRepo) set(id string, fn func(*models.User)) error {
	r.t.mu.Lock()
	defer r.t.mu.Unlock()

	u, ok := r.t.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(&u)
	u.UpdatedAt = time.Now()
	r.t.rows[id] = u
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error { return r.t.delete(id) }

func (r *UserRepo) EnsureIndexes(context.Context) error { return nil }
