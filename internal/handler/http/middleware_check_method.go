// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A request whose method is not served by the matched route gets 404
// instead of chi's default 405, so unsupported methods look like unknown
// routes. Routes are matched by exact pattern; a method that the pattern
// does serve is handed back to the router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			writeNotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, errRouteNotFound, "")
}
