// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for talking to a
// go-user-keeper server.
//
// The primary abstraction is [UserAdapter], which decouples the command-line
// client from the underlying protocol. Two implementations exist: REST over
// resty ([NewHTTPUserAdapter]) and gRPC with the JSON codec
// ([NewGRPCUserAdapter]).
//
// Remote failures are mapped to the sentinel values in errors.go so callers
// can use [errors.Is] regardless of the transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserAdapter performs the four user operations against a remote server.
type UserAdapter interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (uuid.UUID, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)

	// Close releases the underlying connection.
	Close() error
}
