// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the repositories how a driver error should be
// reported to callers.
type ErrorClassification int

const (
	// Unclassified errors are reported as ErrExecutingQuery.
	Unclassified ErrorClassification = iota

	// ConstraintViolation errors are reported as ErrConstraintViolation.
	ConstraintViolation

	// Transient errors are reported as ErrDatabaseUnavailable.
	Transient
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors surfaced by pgx as *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return Transient
	}

	return Unclassified
}

// ClassifyPgError maps a PostgreSQL SQLSTATE onto an [ErrorClassification].
//
// Class 23 (integrity constraint violation) is a ConstraintViolation.
// Class 08 (connection exception), 40 (transaction rollback) and 57
// (operator intervention) are Transient. Everything else is Unclassified.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return ConstraintViolation
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		return Transient
	}

	return Unclassified
}
