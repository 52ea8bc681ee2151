// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnknownDatabaseDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.Transport != TransportHTTP && cfg.Adapter.Transport != TransportGRPC {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Transport == TransportHTTP && cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.Transport == TransportGRPC && cfg.Adapter.GRPCAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
