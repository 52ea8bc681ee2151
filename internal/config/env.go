// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// databaseURLEnv carries the plain DATABASE_URL variable, accepted as a
// fallback for STORAGE_DB_DATABASE_URI.
type databaseURLEnv struct {
	DatabaseURL string `env:"DATABASE_URL"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// struct tags.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		var fallback databaseURLEnv
		if err := env.Parse(&fallback); err != nil {
			return fmt.Errorf("error getting env configs: %w", err)
		}
		cfg.Storage.DB.DSN = fallback.DatabaseURL
	}

	return nil
}
