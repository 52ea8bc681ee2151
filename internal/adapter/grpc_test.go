// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-user-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// newBufAdapter connects a gRPC adapter to an in-memory server backed by a
// mocked user service.
func newBufAdapter(t *testing.T) (UserAdapter, *mock.MockUserService) {
	t.Helper()

	users := mock.NewMockUserService(gomock.NewController(t))
	server := myGRPC.NewHandler(&service.Services{UserService: users}, logger.Nop()).Init()

	lis := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	a, err := NewGRPCUserAdapter(
		config.ClientAdapter{GRPCAddress: "passthrough:///bufnet"},
		logger.Nop(),
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return a, users
}

func TestGRPCAdapter_RoundTrip(t *testing.T) {
	a, users := newBufAdapter(t)
	id := uuid.New()
	name := "Maria"

	req := models.CreateUserRequest{Name: "Anna", Surname: "Li", Email: "a@x.com"}
	gomock.InOrder(
		users.EXPECT().CreateUser(gomock.Any(), req).Return(models.User{UserID: id, Name: "Anna", IsActive: true}, nil),
		users.EXPECT().GetUser(gomock.Any(), id).Return(models.User{UserID: id, Name: "Anna", IsActive: true}, nil),
		users.EXPECT().UpdateUser(gomock.Any(), id, models.UserPatch{Name: &name}).Return(id, nil),
		users.EXPECT().DeleteUser(gomock.Any(), id).Return(id, nil),
	)

	created, err := a.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, id, created.UserID)

	got, err := a.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := a.UpdateUser(context.Background(), id, models.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	deleted, err := a.DeleteUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted)
}

func TestGRPCAdapter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"not found", store.ErrUserNotFound, ErrNotFound},
		{"validation", service.NewValidationError(errors.New("bad name")), ErrValidation},
		{"unavailable", store.ErrDatabaseUnavailable, ErrServiceUnavailable},
		{"internal", errors.New("boom"), ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, users := newBufAdapter(t)
			id := uuid.New()
			users.EXPECT().DeleteUser(gomock.Any(), id).Return(uuid.Nil, tt.err)

			_, err := a.DeleteUser(context.Background(), id)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapGRPCError(t *testing.T) {
	assert.NoError(t, mapGRPCError(nil))

	plain := errors.New("not a status")
	assert.Same(t, plain, mapGRPCError(plain))

	err := mapGRPCError(status.Error(codes.PermissionDenied, "nope"))
	assert.EqualError(t, err, "grpc PermissionDenied: nope")
}

func TestNewGRPCUserAdapter_EmptyAddress(t *testing.T) {
	_, err := NewGRPCUserAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
