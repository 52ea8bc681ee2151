// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	t.Run("user service is wrapped by validation", func(t *testing.T) {
		cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}

		services, err := NewServices(&store.Storages{}, cfg, logger.Nop())
		require.NoError(t, err)

		assert.IsType(t, &UserValidationService{}, services.UserService)
		assert.NotNil(t, services.AppInfoService)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := NewServices(&store.Storages{}, &config.StructuredConfig{}, logger.Nop())
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
