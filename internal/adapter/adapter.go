// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// NewUserAdapter picks the implementation named by cfg.Transport.
func NewUserAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UserAdapter, error) {
	switch cfg.Transport {
	case config.TransportHTTP, "":
		return NewHTTPUserAdapter(cfg, logger)
	case config.TransportGRPC:
		return NewGRPCUserAdapter(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}
