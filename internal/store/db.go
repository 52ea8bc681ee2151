// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is the shared connection pool of the Record Store together with the
// dialect-specific pieces the repositories need.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the pool for cfg.Driver, applies the pool limits and
// checks connectivity within cfg.PingTimeout.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = newConnectPostgres(cfg, log)
	case config.DriverSQLite:
		db, err = newConnectSQLite(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx := ctx
	if cfg.PingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.PingTimeout)
		defer cancel()
	}

	if err = db.PingContext(pingCtx); err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error connecting database (ping)")
		_ = db.DB.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	return db, nil
}

// Dialect returns the configured driver name ("postgres" or "sqlite").
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema of the current dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	return nil
}

// Close releases the pool.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		db.logger.Err(err).Str("func", "*DB.Close").Msg("error closing database")
		return err
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("database closed")

	return nil
}
