// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-user-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type grpcUserAdapter struct {
	conn   *grpc.ClientConn
	client myGRPC.UserServiceClient

	timeout time.Duration

	logger *logger.Logger
}

// NewGRPCUserAdapter dials cfg.GRPCAddress lazily. Extra dial options are
// appended after the defaults (plaintext transport).
func NewGRPCUserAdapter(cfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (UserAdapter, error) {
	if cfg.GRPCAddress == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(cfg.GRPCAddress, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	logger.Debug().Str("address", cfg.GRPCAddress).Msg("grpc adapter created")

	return &grpcUserAdapter{
		conn:    conn,
		client:  myGRPC.NewUserServiceClient(conn),
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

func (g *grpcUserAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	user, err := g.client.CreateUser(ctx, &req)
	if err != nil {
		return models.User{}, mapGRPCError(err)
	}
	return *user, nil
}

func (g *grpcUserAdapter) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	user, err := g.client.GetUser(ctx, &models.UserIDRequest{UserID: userID.String()})
	if err != nil {
		return models.User{}, mapGRPCError(err)
	}
	return *user, nil
}

func (g *grpcUserAdapter) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (uuid.UUID, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.UpdateUser(ctx, &models.UpdateUserRequest{UserID: userID.String(), Patch: patch})
	if err != nil {
		return uuid.Nil, mapGRPCError(err)
	}
	return resp.UpdatedUserID, nil
}

func (g *grpcUserAdapter) DeleteUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.DeleteUser(ctx, &models.UserIDRequest{UserID: userID.String()})
	if err != nil {
		return uuid.Nil, mapGRPCError(err)
	}
	return resp.DeletedUserID, nil
}

// withTimeout bounds a call by the configured request timeout, if any.
func (g *grpcUserAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *grpcUserAdapter) Close() error {
	return g.conn.Close()
}
