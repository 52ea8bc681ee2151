// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

func (h *Handler) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	user, err := h.services.UserService.CreateUser(ctx, *req)
	if err != nil {
		return nil, statusFromError(ctx, err, "")
	}

	return &user, nil
}

func (h *Handler) GetUser(ctx context.Context, req *models.UserIDRequest) (*models.User, error) {
	userID, err := validators.ParseUserID(req.UserID)
	if err != nil {
		return nil, statusFromError(ctx, err, req.UserID)
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		return nil, statusFromError(ctx, err, req.UserID)
	}

	return &user, nil
}

func (h *Handler) UpdateUser(ctx context.Context, req *models.UpdateUserRequest) (*models.UpdatedUserResponse, error) {
	userID, err := validators.ParseUserID(req.UserID)
	if err != nil {
		return nil, statusFromError(ctx, err, req.UserID)
	}

	updatedID, err := h.services.UserService.UpdateUser(ctx, userID, req.Patch)
	if err != nil {
		return nil, statusFromError(ctx, err, req.UserID)
	}

	return &models.UpdatedUserResponse{UpdatedUserID: updatedID}, nil
}

func (h *Handler) DeleteUser(ctx context.Context, req *models.UserIDRequest) (*models.DeletedUserResponse, error) {
	userID, err := validators.ParseUserID(req.UserID)
	if err != nil {
		return nil, statusFromError(ctx, err, req.UserID)
	}

	deletedID, err := h.services.UserService.DeleteUser(ctx, userID)
	if err != nil {
		return nil, statusFromError(ctx, err, req.UserID)
	}

	return &models.DeletedUserResponse{DeletedUserID: deletedID}, nil
}
