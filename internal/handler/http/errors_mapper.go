// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                      http.StatusUnprocessableEntity,
	service.ErrValidation:               http.StatusUnprocessableEntity,
	validators.ErrInvalidUserIdentifier: http.StatusUnprocessableEntity,

	store.ErrUserNotFound: http.StatusNotFound,
	errRouteNotFound:      http.StatusNotFound,

	// a storage constraint violation is reported as a service outage
	store.ErrConstraintViolation: http.StatusServiceUnavailable,
	store.ErrDatabaseUnavailable: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError renders the "detail" field of an error body. userID is
// the raw path value and may be empty.
func detailFromError(err error, status int, userID string) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return err.Error()
	case http.StatusNotFound:
		if errors.Is(err, errRouteNotFound) {
			return http.StatusText(status)
		}
		return app.UserNotFound(userID)
	case http.StatusServiceUnavailable:
		return app.DatabaseError(err)
	default:
		return http.StatusText(status)
	}
}

// writeError logs err and answers with the mapped status and a JSON
// [models.ErrorResponse].
func writeError(w http.ResponseWriter, r *http.Request, err error, userID string) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Detail: detailFromError(err, status, userID)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
