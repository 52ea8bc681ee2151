// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices builds the service layer. The user service is always wrapped
// by the validation service.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService().Wrap(NewUserService(storages, logger))

	return &Services{
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
