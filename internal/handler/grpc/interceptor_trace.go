// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TraceIDKey is the metadata key carrying the trace id in both directions.
const TraceIDKey = "x-trace-id"

// unaryTraceInterceptor is the gRPC counterpart of the HTTP trace id and
// access log middlewares.
func (h *Handler) unaryTraceInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(TraceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = uuid.NewString()
	}

	log := h.logger.WithTraceID(traceID)
	ctx = log.WithContext(ctx)

	if err := grpc.SetHeader(ctx, metadata.Pairs(TraceIDKey, traceID)); err != nil {
		log.Warn().Err(err).Msg("error setting trace id header")
	}

	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
