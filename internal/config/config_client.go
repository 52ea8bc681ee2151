// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"dario.cat/mergo"
)

const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

const defaultClientRequestTimeout = 10 * time.Second

// ClientAdapter describes how the command-line client reaches the server.
type ClientAdapter struct {
	// Transport is "http" (default) or "grpc".
	Transport string `env:"TRANSPORT"`

	HTTPAddress string `env:"ADDRESS"`

	GRPCAddress string `env:"GRPC_ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Verbose lowers the client log level to debug.
	Verbose bool `env:"CLIENT_VERBOSE"`
}

// GetClientConfig loads the client configuration from the environment and
// the global options found in args. It returns the remaining positional
// arguments (the sub-command and its own flags).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, c := range []*ClientConfig{envCfg, flagCfg} {
		if err = mergo.Merge(cfg, c); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Adapter.Transport == "" {
		cfg.Adapter.Transport = TransportHTTP
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}

	return cfg, rest, cfg.validate()
}

func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.Transport, "transport", "", "Transport to use (http, grpc)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server HTTP address")
	fs.StringVar(&cfg.Adapter.GRPCAddress, "grpc-address", "", "Server gRPC address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	return cfg, fs.Args(), nil
}
