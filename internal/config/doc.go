// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the configuration of the server and of the
// command-line client.
//
// Server configuration is assembled by a builder that merges, in order of
// precedence, environment variables (caarlos0/env), command-line flags and an
// optional JSON file (dario.cat/mergo). Defaults are applied after merging and
// the result is validated before it is returned.
package config
