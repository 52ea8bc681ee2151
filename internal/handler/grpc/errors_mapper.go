// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodeMap = map[error]codes.Code{
	service.ErrValidation:               codes.InvalidArgument,
	validators.ErrInvalidUserIdentifier: codes.InvalidArgument,

	store.ErrUserNotFound: codes.NotFound,

	store.ErrConstraintViolation: codes.Unavailable,
	store.ErrDatabaseUnavailable: codes.Unavailable,
}

func codeFromError(err error) codes.Code {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codes.Internal
}

// statusFromError converts a service error into a gRPC status error whose
// message matches the REST "detail" text.
func statusFromError(ctx context.Context, err error, userID string) error {
	log := logger.FromContext(ctx)

	code := codeFromError(err)
	var msg string
	switch code {
	case codes.InvalidArgument:
		msg = err.Error()
	case codes.NotFound:
		msg = app.UserNotFound(userID)
	case codes.Unavailable:
		msg = app.DatabaseError(err)
	default:
		msg = app.MsgInternalServerError
	}

	if code == codes.Internal || code == codes.Unavailable {
		log.Err(err).Str("code", code.String()).Msg("rpc failed")
	} else {
		log.Debug().Err(err).Str("code", code.String()).Msg("rpc rejected")
	}

	return status.Error(code, msg)
}
