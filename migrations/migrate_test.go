// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// ожиданий нет, поэтому первый же запрос goose завершится ошибкой
	err = Migrate(db, "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestEmbeddedMigrations(t *testing.T) {
	for name, d := range dialects {
		t.Run(name, func(t *testing.T) {
			files, err := fs.Glob(embedMigrations, d.dir+"/*.sql")
			require.NoError(t, err)
			require.NotEmpty(t, files)

			content, err := fs.ReadFile(embedMigrations, files[0])
			require.NoError(t, err)
			assert.Contains(t, string(content), "-- +goose Up")
			assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS users")
			assert.Contains(t, string(content), "email")
		})
	}
}
