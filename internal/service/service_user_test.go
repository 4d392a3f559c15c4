package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/mock"
	"github.com/MKhiriev/intelli-scan/internal/store"
	"github.com/MKhiriev/intelli-scan/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return NewUserService(users, hasher, logger.Nop()), users, hasher
}

func TestUserService_GetUser(t *testing.T) {
	svc, users, _ := newTestUserSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, Name: "Eve"}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), int64(6)).Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.GetUser(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Eve", user.Name)

	_, err = svc.GetUser(context.Background(), 6)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateUser_AppliesOnlyGivenFields(t *testing.T) {
	svc, users, _ := newTestUserSvc(t)

	current := models.User{ID: 5, Name: "Eve", Email: "eve@example.com", PasswordHash: strPtr("old")}
	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(current, nil)
	users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "Eve Adams", u.Name)
			assert.Equal(t, "eve@example.com", u.Email)
			assert.Equal(t, "old", *u.PasswordHash)
			return u, nil
		},
	)

	user, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Name: strPtr("Eve Adams")})
	require.NoError(t, err)
	assert.Equal(t, "Eve Adams", user.Name)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	svc, users, hasher := newTestUserSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, PasswordHash: strPtr("old")}, nil)
	hasher.EXPECT().Hash("new-password").Return("new-digest", nil)
	users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "new-digest", *u.PasswordHash)
			return u, nil
		},
	)

	_, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Password: strPtr("new-password")})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_DuplicateEmail(t *testing.T) {
	svc, users, _ := newTestUserSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, GoogleID: strPtr("google-sub")}, nil)
	users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Email: strPtr("taken@example.com")})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_UpdateUser_Empty(t *testing.T) {
	svc, _, _ := newTestUserSvc(t)

	_, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_UpdateUser_Missing(t *testing.T) {
	svc, users, _ := newTestUserSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateUser_RefusesAccountWithoutLogin(t *testing.T) {
	svc, users, _ := newTestUserSvc(t)

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, Name: "Eve", Email: "eve@example.com"}, nil)
	users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateUser(context.Background(), 5, models.UpdateUserRequest{Name: strPtr("Eva")})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, users, _ := newTestUserSvc(t)

	users.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)
	users.EXPECT().DeleteUser(gomock.Any(), int64(6)).Return(store.ErrUserNotFound)
	users.EXPECT().DeleteUser(gomock.Any(), int64(7)).Return(errors.New("connection reset"))

	require.NoError(t, svc.DeleteUser(context.Background(), 5))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 6), store.ErrUserNotFound)
	assert.Error(t, svc.DeleteUser(context.Background(), 7))
}
