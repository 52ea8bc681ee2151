// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// User is the full projection of a stored user row.
// It is returned by create and read operations.
type User struct {
	// UserID is generated at creation time and never changes or gets reused.
	UserID uuid.UUID `json:"user_id"`

	// Name is the user's first name (letters and hyphens only).
	Name string `json:"name"`

	// Surname is the user's last name (letters and hyphens only).
	Surname string `json:"surname"`

	// Email is unique across all rows, active or not.
	Email string `json:"email"`

	// IsActive is true from creation until the user is soft-deleted.
	// Once false it never becomes true again.
	IsActive bool `json:"is_active"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate is the storage-level instruction produced from a [UserPatch]:
// the target row plus the explicit set of columns to overwrite.
// A nil field means "leave the column untouched".
type UserUpdate struct {
	UserID  uuid.UUID
	Name    *string
	Surname *string
	Email   *string
}

// IsEmpty reports whether the update carries no columns to set.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Surname == nil && u.Email == nil
}
