// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

// userService implements [UserService] on top of a [store.Transactor].
// It expects already validated input; see [UserValidationService].
type userService struct {
	transactor store.Transactor
	ids        *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewUserService(storages *store.Storages, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")

	return &userService{
		transactor: storages.Transactor,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := req.ToUser()
	user.UserID = s.ids.New()

	var created models.User
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repo store.UserRepository) error {
		var err error
		created, err = repo.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	log.Info().Str("func", "*userService.CreateUser").Stringer("user_id", created.UserID).Msg("user created")
	return created, nil
}

func (s *userService) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repo store.UserRepository) error {
		var err error
		user, err = repo.GetUserByID(ctx, userID)
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser looks the user up and then writes the patch in a second,
// separate transaction. The write itself only matches an active row, so a
// user deactivated in between is reported as not found.
func (s *userService) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	if _, err := s.GetUser(ctx, userID); err != nil {
		return uuid.Nil, err
	}

	var updatedID uuid.UUID
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repo store.UserRepository) error {
		var err error
		updatedID, err = repo.UpdateUser(ctx, patch.ToUpdate(userID))
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Stringer("user_id", userID).Msg("error updating user")
		return uuid.Nil, err
	}

	log.Info().Str("func", "*userService.UpdateUser").Stringer("user_id", updatedID).Msg("user updated")
	return updatedID, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	var deletedID uuid.UUID
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, repo store.UserRepository) error {
		var err error
		deletedID, err = repo.DeactivateUser(ctx, userID)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	log.Info().Str("func", "*userService.DeleteUser").Stringer("user_id", deletedID).Msg("user deactivated")
	return deletedID, nil
}
