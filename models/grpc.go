// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserIDRequest addresses a single user in gRPC calls (GetUser, DeleteUser).
// UserID is kept as a string so malformed ids reach the handler and are
// reported as invalid arguments instead of codec failures.
type UserIDRequest struct {
	UserID string `json:"user_id"`
}

// UpdateUserRequest is the gRPC counterpart of PATCH /user/{user_id}.
type UpdateUserRequest struct {
	UserID string    `json:"user_id"`
	Patch  UserPatch `json:"patch"`
}
