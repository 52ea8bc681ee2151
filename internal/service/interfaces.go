// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

// UserService carries out the four user operations. Each storage access
// happens inside its own transaction.
type UserService interface {
	// CreateUser stores a new active user and returns its full projection.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// GetUser returns the user whether it is active or not.
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)

	// UpdateUser applies patch to an active user and returns its id.
	UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (uuid.UUID, error)

	// DeleteUser soft-deletes an active user and returns its id.
	DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
