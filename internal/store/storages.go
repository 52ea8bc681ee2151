// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// Storages groups the storage-layer dependencies handed to the services.
type Storages struct {
	UserRepository UserRepository
	Transactor     Transactor
}

// NewStorages wires the repositories of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	logger.Debug().Str("dialect", db.dialect).Msg("creating storages")

	return &Storages{
		UserRepository: NewUserRepository(db),
		Transactor:     NewTransactor(db),
	}
}

type transactor struct {
	db *DB
}

func NewTransactor(db *DB) Transactor {
	return &transactor{db: db}
}

// WithinTx runs fn on a repository bound to a fresh transaction. The
// deferred rollback also covers a panic inside fn; after a successful commit
// it is a no-op.
func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*transactor.WithinTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, newUserRepository(tx, t.db)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*transactor.WithinTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
