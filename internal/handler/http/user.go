// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "")
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, req)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, userIDParam)
	userID, err := validators.ParseUserID(rawID)
	if err != nil {
		writeError(w, r, err, rawID)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err, rawID)
		return
	}

	if _, err = utils.WriteJSON(w, user, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, userIDParam)
	userID, err := validators.ParseUserID(rawID)
	if err != nil {
		writeError(w, r, err, rawID)
		return
	}

	var patch models.UserPatch
	if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), rawID)
		return
	}

	updatedID, err := h.services.UserService.UpdateUser(ctx, userID, patch)
	if err != nil {
		writeError(w, r, err, rawID)
		return
	}

	if _, err = utils.WriteJSON(w, models.UpdatedUserResponse{UpdatedUserID: updatedID}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, userIDParam)
	userID, err := validators.ParseUserID(rawID)
	if err != nil {
		writeError(w, r, err, rawID)
		return
	}

	deletedID, err := h.services.UserService.DeleteUser(ctx, userID)
	if err != nil {
		writeError(w, r, err, rawID)
		return
	}

	if _, err = utils.WriteJSON(w, models.DeletedUserResponse{DeletedUserID: deletedID}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
