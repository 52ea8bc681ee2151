// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

// UserServiceWrapper decorates a UserService with extra behaviour such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// UserValidationService checks request schemas before delegating to the
// wrapped [UserService]. Rejections are returned as [ValidationError].
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, NewValidationError(err)
	}

	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

// UpdateUser rejects an empty patch before the user is even looked up.
func (v *UserValidationService) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (uuid.UUID, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return uuid.Nil, NewValidationError(err)
	}

	return v.inner.UpdateUser(ctx, userID, patch)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	return v.inner.DeleteUser(ctx, userID)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
