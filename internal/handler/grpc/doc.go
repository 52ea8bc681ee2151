// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of go-user-keeper.
//
// The service "user.UserService" is declared by hand and carried with a JSON
// codec registered under the "json" content-subtype, so the wire messages
// are the same structs the REST transport uses.
package grpc
