// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-level message texts shared by the HTTP
// and gRPC transports, so both report a failure with the same wording.
package app

import "fmt"

const (
	// MsgUserNotFound is formatted with the requested user id.
	MsgUserNotFound = "User with id %s not found"

	// MsgDatabaseError is formatted with the storage error.
	MsgDatabaseError = "Database error: %v"

	MsgInternalServerError = "internal error"
)

func UserNotFound(userID string) string {
	return fmt.Sprintf(MsgUserNotFound, userID)
}

func DatabaseError(err error) string {
	return fmt.Sprintf(MsgDatabaseError, err)
}
