// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

type httpUserAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPUserAdapter builds the REST implementation of [UserAdapter].
// HTTPAddress may omit the scheme, "http://" is assumed.
func NewHTTPUserAdapter(cfg config.ClientAdapter, logger *logger.Logger) (UserAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)

	logger.Debug().Str("base_url", baseURL).Msg("http adapter created")

	return &httpUserAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpUserAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/user/")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUserAdapter) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", userID.String()).
		SetResult(&user).
		Get("/user/{user_id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUserAdapter) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (uuid.UUID, error) {
	var result models.UpdatedUserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", userID.String()).
		SetBody(patch).
		SetResult(&result).
		Patch("/user/{user_id}")
	if err != nil {
		return uuid.Nil, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return uuid.Nil, err
	}

	return result.UpdatedUserID, nil
}

func (h *httpUserAdapter) DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var result models.DeletedUserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("user_id", userID.String()).
		SetResult(&result).
		Delete("/user/{user_id}")
	if err != nil {
		return uuid.Nil, fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return uuid.Nil, err
	}

	return result.DeletedUserID, nil
}

func (h *httpUserAdapter) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
