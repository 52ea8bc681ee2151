// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockUserAdapter, *bytes.Buffer) {
	t.Helper()

	users := mock.NewMockUserAdapter(gomock.NewController(t))
	out := &bytes.Buffer{}
	return NewApp(users, out, logger.Nop()), users, out
}

func TestRun_Create(t *testing.T) {
	app, users, out := newTestApp(t)
	id := uuid.New()

	users.EXPECT().CreateUser(gomock.Any(), models.CreateUserRequest{Name: "Anna", Surname: "Li", Email: "a@x.com"}).
		Return(models.User{UserID: id, Name: "Anna", Surname: "Li", Email: "a@x.com", IsActive: true}, nil)

	err := app.Run(context.Background(), []string{"create", "-name", "Anna", "-surname", "Li", "-email", "a@x.com"})
	require.NoError(t, err)

	var got models.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, id, got.UserID)
	assert.True(t, got.IsActive)
}

func TestRun_Get(t *testing.T) {
	app, users, out := newTestApp(t)
	id := uuid.New()

	users.EXPECT().GetUser(gomock.Any(), id).Return(models.User{UserID: id, Name: "Anna"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"get", id.String()}))
	assert.Contains(t, out.String(), `"name": "Anna"`)
}

func TestRun_Update_OnlyGivenFlags(t *testing.T) {
	app, users, out := newTestApp(t)
	id := uuid.New()
	surname := "Lee"

	users.EXPECT().UpdateUser(gomock.Any(), id, models.UserPatch{Surname: &surname}).Return(id, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", id.String(), "-surname", "Lee"}))
	assert.JSONEq(t, `{"updated_user_id":"`+id.String()+`"}`, out.String())
}

func TestRun_Delete_RemoteError(t *testing.T) {
	app, users, out := newTestApp(t)
	id := uuid.New()

	users.EXPECT().DeleteUser(gomock.Any(), id).Return(uuid.Nil, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"delete", id.String()})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRun_BadInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no command", nil, ErrNoCommand},
		{"unknown command", []string{"list"}, ErrUnknownCommand},
		{"missing id", []string{"get"}, ErrMissingArgument},
		{"bad id", []string{"delete", "42"}, ErrBadUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			assert.ErrorIs(t, app.Run(context.Background(), tt.args), tt.wantErr)
		})
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"create", "-age", "3"})
	assert.Error(t, err)
}
