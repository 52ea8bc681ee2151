// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const userIDParam = "user_id"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Post("/user/", h.createUser)
		r.Get("/user/{"+userIDParam+"}", h.getUser)
		r.Patch("/user/{"+userIDParam+"}", h.updateUser)
		r.Delete("/user/{"+userIDParam+"}", h.deleteUser)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Handle("/metrics", h.metrics.handler())

	router.NotFound(writeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
