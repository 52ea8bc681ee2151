// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/handler"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger

	shutdownOnce sync.Once
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

// Run launches every configured transport and waits for ctx to end. If a
// transport fails first, the others are shut down and the failure returned.
func (s *server) Run(ctx context.Context) error {
	errs := make(chan error, 2)
	var wg sync.WaitGroup

	launch := func(name string, run func() error) {
		s.logger.Info().Msgf("Launching %s server", name)
		wg.Go(func() {
			if err := run(); err != nil {
				errs <- err
			}
		})
	}

	if s.httpServer != nil {
		launch("HTTP", s.httpServer.RunServer)
	}
	if s.gRPCServer != nil {
		launch("gRPC", s.gRPCServer.RunServer)
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-errs:
		s.logger.Err(err).Msg("server failed")
		runErr = fmt.Errorf("%w: %w", errServerFailed, err)
	}

	s.Shutdown()
	wg.Wait()
	close(errs)

	// a second transport may have failed while shutting down
	for err := range errs {
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		s.logger.Info().Msg("server Shutdown gracefully")
	}
	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.Shutdown()
		}
	})
}
