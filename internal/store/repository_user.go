// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// userRepository implements [UserRepository] on top of a single querier,
// normally the transaction opened by [Transactor.WithinTx].
type userRepository struct {
	q                  querier
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
}

// NewUserRepository returns a repository that runs its statements directly
// on the pool of db, each in its own implicit transaction.
func NewUserRepository(db *DB) UserRepository {
	return newUserRepository(db.DB, db)
}

func newUserRepository(q querier, db *DB) *userRepository {
	return &userRepository{
		q:                  q,
		builder:            db.builder,
		errorClassificator: db.errorClassificator,
	}
}

// CreateUser inserts a new row and returns it as stored, including the
// is_active default.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	var created models.User
	err = r.q.QueryRowContext(ctx, query, args...).
		Scan(&created.UserID, &created.Name, &created.Surname, &created.Email, &created.IsActive)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("failed to insert user")
		return models.User{}, r.classify(err)
	}

	return created, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.q.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Name, &user.Surname, &user.Email, &user.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByID").Stringer("user_id", userID).Msg("failed to select user")
		return models.User{}, r.classify(err)
	}

	return user, nil
}

func (r *userRepository) DeactivateUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeactivateUserQuery(r.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeactivateUser").Msg("failed to build query")
		return uuid.Nil, err
	}

	return r.returningUserID(ctx, "*userRepository.DeactivateUser", userID, query, args)
}

func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return uuid.Nil, err
	}

	return r.returningUserID(ctx, "*userRepository.UpdateUser", update.UserID, query, args)
}

// returningUserID runs a conditional write ending in RETURNING user_id. No
// returned row means the user is unknown or no longer active.
func (r *userRepository) returningUserID(ctx context.Context, funcName string, userID uuid.UUID, query string, args []any) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	var returnedID uuid.UUID
	err := r.q.QueryRowContext(ctx, query, args...).Scan(&returnedID)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Stringer("user_id", userID).Msg("failed to execute conditional update")
		return uuid.Nil, r.classify(err)
	}

	return returnedID, nil
}

// classify wraps a driver error into the matching store sentinel.
func (r *userRepository) classify(err error) error {
	switch r.errorClassificator.Classify(err) {
	case ConstraintViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case Transient:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
