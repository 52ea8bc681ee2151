// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler builds a Handler over gomock services.
func newTestHandler(t *testing.T) (*Handler, *mock.MockUserService, *mock.MockAppInfoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	users := mock.NewMockUserService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)

	h := NewHandler(&service.Services{UserService: users, AppInfoService: appInfo}, config.Server{}, logger.Nop())
	return h, users, appInfo
}

// serve runs one request through the full router.
func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Detail
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 5}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.NotNil(t, h.metrics)
	assert.EqualValues(t, 5, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, _, _ := newTestHandler(t)

	patterns := make(map[string][]string)
	for _, route := range h.Init().Routes() {
		for method := range route.Handlers {
			patterns[route.Pattern] = append(patterns[route.Pattern], method)
		}
	}

	assert.ElementsMatch(t, []string{http.MethodPost}, patterns["/user/"])
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodPatch, http.MethodDelete}, patterns["/user/{user_id}"])
	assert.ElementsMatch(t, []string{http.MethodGet}, patterns["/api/version/"])
	assert.Contains(t, patterns, "/metrics")
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := serve(t, h.Init(), http.MethodGet, "/api/nonexistent", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeDetail(t, rec))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _, _ := newTestHandler(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/version/"},
		{http.MethodPut, "/user/0190c3c4-5b7a-7c3e-9a55-1f0c2d3e4f50"},
		{http.MethodGet, "/user/"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, tc.method, tc.path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _, appInfo := newTestHandler(t)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}
