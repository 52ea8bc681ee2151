// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of go-user-keeper.
//
// It wires the chi router, decodes user requests, delegates them to the
// service layer and maps service outcomes onto status codes and JSON
// bodies. Request tracing, access logging and Prometheus metrics are
// handled by middleware in this package.
package http
