// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no row matches the requested user id,
	// or when a conditional write finds the user already inactive.
	ErrUserNotFound = errors.New("user not found")

	// ErrConstraintViolation is returned when the database rejects a write
	// because of an integrity constraint (e.g. duplicate email). The driver
	// error is wrapped alongside.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrDatabaseUnavailable is returned for transient failures: lost
	// connections, serialization failures, a busy or locked database.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrNothingToUpdate is returned by UpdateUser when no column was supplied.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")

	ErrExecutingQuery = errors.New("error executing sql query")

	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	ErrScanningRow = errors.New("failed to scan user row")

	ErrUnknownDriver = errors.New("unknown database driver")
)
