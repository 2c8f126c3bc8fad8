package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
)

type fakeUserStore struct {
	users map[int64]*models.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetAll(_ context.Context, _ uint64, _ int) ([]*models.User, error) {
	var out []*models.User
	for _, user := range f.users {
		out = append(out, user)
	}
	return out, nil
}

func (f *fakeUserStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) SetActive(_ context.Context, id int64, active bool) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newTestUserService() (UserService, *fakeUserStore) {
	store := &fakeUserStore{users: map[int64]*models.User{
		1: {ID: 1, FirstName: "Sam", LastName: "Lee", Email: "sam.lee@campus.edu",
			UserUID: "stu1001", RoleID: models.RoleIDStudent, IsActive: true},
		2: {ID: 2, FirstName: "Ada", LastName: "Kim", Email: "ada.kim@campus.edu",
			UserUID: "adm3001", RoleID: models.RoleIDAdmin, IsActive: true},
	}}
	return NewUserService(store), store
}

func TestGetUserSelfOrAdmin(t *testing.T) {
	svc, _ := newTestUserService()
	student := Actor{UserID: 1, RoleID: models.RoleIDStudent}
	admin := Actor{UserID: 2, RoleID: models.RoleIDAdmin}

	user, err := svc.GetByID(context.Background(), student, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = svc.GetByID(context.Background(), student, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	_, err = svc.GetByID(context.Background(), admin, 1)
	assert.NoError(t, err)
}

func TestUpdateUserNormalizesEmail(t *testing.T) {
	svc, store := newTestUserService()
	student := Actor{UserID: 1, RoleID: models.RoleIDStudent}

	updated, err := svc.Update(context.Background(), student, 1, dto.UpdateUserRequest{
		FirstName: "  Sam ",
		LastName:  "Lee",
		Email:     " Sam.Lee@Campus.EDU ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sam", updated.FirstName)
	assert.Equal(t, "sam.lee@campus.edu", updated.Email)
	assert.Equal(t, "sam.lee@campus.edu", store.users[1].Email)
}

func TestUpdateUserForbiddenForOthers(t *testing.T) {
	svc, _ := newTestUserService()
	student := Actor{UserID: 1, RoleID: models.RoleIDStudent}

	_, err := svc.Update(context.Background(), student, 2, dto.UpdateUserRequest{
		FirstName: "New", LastName: "Name", Email: "new@campus.edu",
	})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestSetActive(t *testing.T) {
	svc, store := newTestUserService()

	require.NoError(t, svc.SetActive(context.Background(), 1, false))
	assert.False(t, store.users[1].IsActive)

	require.NoError(t, svc.SetActive(context.Background(), 1, true))
	assert.True(t, store.users[1].IsActive)

	assert.ErrorIs(t, svc.SetActive(context.Background(), 99, false), apperrors.ErrUserNotFound)
}
