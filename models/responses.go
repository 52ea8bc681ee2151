// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// DeletedUserResponse confirms a soft delete.
type DeletedUserResponse struct {
	DeletedUserID uuid.UUID `json:"deleted_user_id"`
}

// UpdatedUserResponse confirms a partial update.
type UpdatedUserResponse struct {
	UpdatedUserID uuid.UUID `json:"updated_user_id"`
}

// ErrorResponse is the JSON body written for every failed request.
// Detail is a human-readable message naming the rule that was broken.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
