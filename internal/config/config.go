// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-user-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database that keeps
	// user records.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-wide settings.
type App struct {
	// Version is reported by GET /api/version/.
	Version string `env:"VERSION"`
}

// Server holds the listen addresses of the transports. An empty address
// disables the corresponding transport.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Zero means no timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB describes the Record Store connection.
type DB struct {
	// Driver selects the SQL dialect: "postgres" (default) or "sqlite".
	Driver string `env:"DRIVER"`

	// DSN is the connection string. For sqlite it is a file path or
	// a "file:" URI.
	DSN string `env:"DATABASE_URI"`

	MaxOpenConns    int           `env:"MAX_OPEN_CONNS"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`

	// PingTimeout bounds the connectivity check performed at start-up.
	PingTimeout time.Duration `env:"PING_TIMEOUT"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 4
	defaultPingTimeout  = 5 * time.Second
	defaultAppVersion   = "dev"
)

// GetStructuredConfig loads the server configuration from the environment,
// the command line and, when requested, a JSON file. Earlier sources win:
// env over flags over JSON.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// setDefaults fills the zero values that have a sensible default.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverPostgres
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = defaultMaxIdleConns
	}
	if cfg.Storage.DB.PingTimeout == 0 {
		cfg.Storage.DB.PingTimeout = defaultPingTimeout
	}
}
