// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/client"
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewClientLogger("user-keeper-client", false).Error().Err(err).Msg("error getting configs")
		fmt.Fprint(os.Stderr, client.Usage)
		return 2
	}

	log := logger.NewClientLogger("user-keeper-client", cfg.Verbose)
	log.Debug().Msg(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())

	userAdapter, err := adapter.NewUserAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating adapter")
		return 1
	}
	defer userAdapter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(userAdapter, os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		log.Error().Err(err).Msg("command failed")
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, client.Usage)
			return 2
		}
		return 1
	}

	return 0
}
