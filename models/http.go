// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// CreateUserRequest is the body of POST /user/.
// All fields are required.
type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,letters"`
	Surname string `json:"surname" validate:"required,letters"`
	Email   string `json:"email" validate:"required,email"`
}

// ToUser converts the request into a not yet persisted [User].
func (r CreateUserRequest) ToUser() User {
	return User{
		Name:    r.Name,
		Surname: r.Surname,
		Email:   r.Email,
	}
}

// UserPatch is the body of PATCH /user/{user_id}.
//
// Every field is optional. A JSON null and an absent key are treated the
// same way: the column is not touched. At least one field must be non-null.
type UserPatch struct {
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// IsEmpty reports whether the patch carries no non-null field.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Surname == nil && p.Email == nil
}

// ToUpdate maps the patch onto the fixed set of mutable columns of userID.
func (p UserPatch) ToUpdate(userID uuid.UUID) UserUpdate {
	return UserUpdate{
		UserID:  userID,
		Name:    p.Name,
		Surname: p.Surname,
		Email:   p.Email,
	}
}
