// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer() error

	// Run serves until ctx is cancelled or a transport fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every started transport.
	Shutdown()
}
