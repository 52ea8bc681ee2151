// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserSvc — хелпер: userService поверх мока транзакций, который
// передаёт в fn мок репозитория.
func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockTransactor, *mock.MockUserRepository) {
	t.Helper()

	repo := mock.NewMockUserRepository(ctrl)
	tr := mock.NewMockTransactor(ctrl)

	svc := NewUserService(&store.Storages{UserRepository: repo, Transactor: tr}, logger.Nop())
	return svc, tr, repo
}

// runTx makes the transactor mock execute fn against repo.
func runTx(repo store.UserRepository) func(ctx context.Context, fn func(context.Context, store.UserRepository) error) error {
	return func(ctx context.Context, fn func(context.Context, store.UserRepository) error) error {
		return fn(ctx, repo)
	}
}

func strPtr(s string) *string {
	return &s
}

// ── CreateUser ──────────────────────────────────────────────────────────────

func TestUserService_CreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := models.CreateUserRequest{Name: "Anna", Surname: "Li", Email: "anna@x.io"}

	tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo))
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, uuid.Nil, u.UserID, "id должен генерироваться приложением")
			assert.Equal(t, "Anna", u.Name)
			assert.Equal(t, "Li", u.Surname)
			assert.Equal(t, "anna@x.io", u.Email)
			u.IsActive = true
			return u, nil
		},
	)

	created, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.True(t, created.IsActive)
	assert.Equal(t, "Anna", created.Name)
}

func TestUserService_CreateUser_ConstraintViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	dbErr := errors.New(`duplicate key value violates unique constraint "users_email_key"`)

	tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo))
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, errors.Join(store.ErrConstraintViolation, dbErr))

	_, err := svc.CreateUser(ctx, models.CreateUserRequest{Name: "Anna", Surname: "Li", Email: "anna@x.io"})
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
	assert.ErrorIs(t, err, dbErr)
}

// ── GetUser ─────────────────────────────────────────────────────────────────

func TestUserService_GetUser(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, tr, repo := newTestUserSvc(t, ctrl)
		ctx := context.Background()

		stored := models.User{UserID: id, Name: "Anna", Surname: "Li", Email: "anna@x.io", IsActive: false}

		tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo))
		repo.EXPECT().GetUserByID(ctx, id).Return(stored, nil)

		user, err := svc.GetUser(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, tr, repo := newTestUserSvc(t, ctrl)
		ctx := context.Background()

		tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo))
		repo.EXPECT().GetUserByID(ctx, id).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.GetUser(ctx, id)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

// ── UpdateUser ──────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	id := uuid.New()

	patch := models.UserPatch{Surname: strPtr("Lee")}

	// поиск и обновление идут в двух разных транзакциях
	tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo)).Times(2)
	gomock.InOrder(
		repo.EXPECT().GetUserByID(ctx, id).Return(models.User{UserID: id, IsActive: true}, nil),
		repo.EXPECT().UpdateUser(ctx, models.UserUpdate{UserID: id, Surname: patch.Surname}).Return(id, nil),
	)

	updated, err := svc.UpdateUser(ctx, id, patch)
	require.NoError(t, err)
	assert.Equal(t, id, updated)
}

func TestUserService_UpdateUser_UnknownUser_NoSecondTx(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	id := uuid.New()

	tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo)).Times(1)
	repo.EXPECT().GetUserByID(ctx, id).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(ctx, id, models.UserPatch{Name: strPtr("Anna")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_UpdateUser_InactiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	id := uuid.New()

	tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo)).Times(2)
	repo.EXPECT().GetUserByID(ctx, id).Return(models.User{UserID: id, IsActive: false}, nil)
	repo.EXPECT().UpdateUser(ctx, gomock.Any()).Return(uuid.Nil, store.ErrUserNotFound)

	_, err := svc.UpdateUser(ctx, id, models.UserPatch{Name: strPtr("Anna")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ── DeleteUser ──────────────────────────────────────────────────────────────

func TestUserService_DeleteUser_Twice(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, repo := newTestUserSvc(t, ctrl)
	ctx := context.Background()
	id := uuid.New()

	tr.EXPECT().WithinTx(ctx, gomock.Any()).DoAndReturn(runTx(repo)).Times(2)
	gomock.InOrder(
		repo.EXPECT().DeactivateUser(ctx, id).Return(id, nil),
		repo.EXPECT().DeactivateUser(ctx, id).Return(uuid.Nil, store.ErrUserNotFound),
	)

	deleted, err := svc.DeleteUser(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted)

	_, err = svc.DeleteUser(ctx, id)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_TxError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, tr, _ := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	tr.EXPECT().WithinTx(ctx, gomock.Any()).Return(store.ErrBeginningTransaction)

	_, err := svc.DeleteUser(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrBeginningTransaction)
}
