package user

import (
	"context"
	"testing"
	"time"

	"campusportal/database/repository"
	"campusportal/database/repository/memory"
	"campusportal/models"
	"campusportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*DefaultUserService, *memory.UserRepo) {
	repo := memory.NewUserRepo()
	return NewDefaultUserService(repo, nil, time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, models.RegisterInput{Name: "Ada", Email: "Ada@Campus.edu", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, reg.Role)
	assert.Equal(t, "ada@campus.edu", reg.Email)

	stored, err := repo.GetByID(ctx, reg.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.Equal(t, utils.HashToken(reg.Token), stored.TokenHash)

	_, err = svc.Register(ctx, models.RegisterInput{Name: "Ada", Email: "ada@campus.edu", Password: "another one"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = svc.Login(ctx, models.LoginInput{Email: "ada@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, models.LoginInput{Email: "bob@campus.edu", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	login, err := svc.Login(ctx, models.LoginInput{Email: "ADA@campus.edu", Password: "correct horse"})
	require.NoError(t, err)
	claims, err := utils.ParseClaims(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestLogoutAndRoleChangeRevokeSession(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, models.RegisterInput{Name: "Ada", Email: "ada@campus.edu", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.ID))
	stored, _ := repo.GetByID(ctx, reg.ID)
	assert.Empty(t, stored.TokenHash)

	_, err = svc.Login(ctx, models.LoginInput{Email: "ada@campus.edu", Password: "correct horse"})
	require.NoError(t, err)

	updated, err := svc.UpdateUserRole(ctx, reg.ID, models.RoleLecturer)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLecturer, updated.Role)
	assert.Empty(t, updated.TokenHash)

	_, err = svc.UpdateUserRole(ctx, reg.ID, "dean")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	require.NoError(t, svc.DeleteUser(ctx, reg.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, reg.ID), repository.ErrNotFound)
}
