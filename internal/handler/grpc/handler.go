// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler. It implements
// [UserServiceServer] on top of the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Init builds a grpc.Server with the trace/logging interceptor and the user
// service registered.
func (h *Handler) Init(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(h.unaryTraceInterceptor)}, opts...)

	server := grpc.NewServer(opts...)
	RegisterUserServiceServer(server, h)

	return server
}
