// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON is returned when a request body cannot be decoded into the
// expected schema.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// errRouteNotFound answers requests for unknown routes or methods.
var errRouteNotFound = errors.New("route not found")
