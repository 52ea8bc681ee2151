// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	columnUserID   = "user_id"
	columnName     = "name"
	columnSurname  = "surname"
	columnEmail    = "email"
	columnIsActive = "is_active"
)

var userColumns = []string{columnUserID, columnName, columnSurname, columnEmail, columnIsActive}

// activeUser matches the given id only while the user is active.
func activeUser(userID uuid.UUID) sq.And {
	return sq.And{
		sq.Eq{columnUserID: userID},
		sq.Eq{columnIsActive: true},
	}
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(models.User{}.TableName()).
		Columns(columnUserID, columnName, columnSurname, columnEmail).
		Values(user.UserID, user.Name, user.Surname, user.Email).
		Suffix("RETURNING user_id, name, surname, email, is_active").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildSelectUserQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{columnUserID: userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeactivateUserQuery(b sq.StatementBuilderType, userID uuid.UUID) (string, []any, error) {
	query, args, err := b.
		Update(models.User{}.TableName()).
		Set(columnIsActive, false).
		Where(activeUser(userID)).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery sets only the columns present in update, always in
// the order name, surname, email.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := b.Update(models.User{}.TableName())

	if update.Name != nil {
		builder = builder.Set(columnName, *update.Name)
	}
	if update.Surname != nil {
		builder = builder.Set(columnSurname, *update.Surname)
	}
	if update.Email != nil {
		builder = builder.Set(columnEmail, *update.Email)
	}

	query, args, err := builder.
		Where(activeUser(update.UserID)).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
