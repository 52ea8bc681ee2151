// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages(t *testing.T) {
	db, _ := newTestDB(t)

	storages := NewStorages(db, logger.Nop())
	require.NotNil(t, storages)
	assert.NotNil(t, storages.UserRepository)
	assert.NotNil(t, storages.Transactor)
}

func TestTransactor_WithinTx(t *testing.T) {
	id := uuid.New()

	t.Run("commit on success", func(t *testing.T) {
		db, mock := newTestDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE users SET is_active").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(id.String()))
		mock.ExpectCommit()

		err := tr.WithinTx(context.Background(), func(ctx context.Context, repo UserRepository) error {
			_, err := repo.DeactivateUser(ctx, id)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock := newTestDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE users SET is_active").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
		mock.ExpectRollback()

		err := tr.WithinTx(context.Background(), func(ctx context.Context, repo UserRepository) error {
			_, err := repo.DeactivateUser(ctx, id)
			return err
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on panic", func(t *testing.T) {
		db, mock := newTestDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tr.WithinTx(context.Background(), func(ctx context.Context, repo UserRepository) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin().WillReturnError(errors.New("no connection"))

		called := false
		err := tr.WithinTx(context.Background(), func(ctx context.Context, repo UserRepository) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ErrBeginningTransaction)
		assert.False(t, called)
	})

	t.Run("commit fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		err := tr.WithinTx(context.Background(), func(ctx context.Context, repo UserRepository) error {
			return nil
		})
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}
