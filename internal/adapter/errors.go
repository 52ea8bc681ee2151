// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrValidation          = errors.New("request rejected by server")
	ErrNotFound            = errors.New("not found")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	ErrUnknownTransport = errors.New("unknown transport")
	ErrInvalidAddress   = errors.New("invalid server address")
)
