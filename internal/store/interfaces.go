// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

// UserRepository is the Data Access Layer for the "users" table. Each method
// runs exactly one statement on the connection or transaction it is bound to.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A duplicate email
	// yields ErrConstraintViolation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUserByID returns the user regardless of its active flag, or
	// ErrUserNotFound.
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	// DeactivateUser flips is_active to false for an active user and returns
	// its id. Inactive or unknown ids yield ErrUserNotFound.
	DeactivateUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)

	// UpdateUser writes the supplied columns of an active user and returns its
	// id. Inactive or unknown ids yield ErrUserNotFound.
	UpdateUser(ctx context.Context, update models.UserUpdate) (uuid.UUID, error)
}

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	// WithinTx begins a transaction and passes fn a UserRepository bound to
	// it. The transaction is committed when fn returns nil and rolled back
	// otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
