// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/google/uuid"
)

// Usage is printed when no or an unknown command is given.
const Usage = `usage: client [-transport http|grpc] [-a addr] [-grpc-address addr] [-v] <command> [args]

commands:
  create -name NAME -surname SURNAME -email EMAIL
  get    USER_ID
  update USER_ID [-name NAME] [-surname SURNAME] [-email EMAIL]
  delete USER_ID
`

type App struct {
	adapter adapter.UserAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(adapter adapter.UserAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: adapter,
		out:     out,
		logger:  logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, args := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", args).Msg("running command")

	var (
		result any
		err    error
	)
	switch command {
	case "create":
		result, err = a.create(ctx, args)
	case "get":
		result, err = a.get(ctx, args)
	case "update":
		result, err = a.update(ctx, args)
	case "delete":
		result, err = a.delete(ctx, args)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	if err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var req models.CreateUserRequest
	fs.StringVar(&req.Name, "name", "", "first name")
	fs.StringVar(&req.Surname, "surname", "", "last name")
	fs.StringVar(&req.Email, "email", "", "email address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	return a.adapter.CreateUser(ctx, req)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	userID, err := parseUserIDArg(args)
	if err != nil {
		return nil, err
	}

	return a.adapter.GetUser(ctx, userID)
}

// update sends only the fields whose flags were given, so "-name ''" still
// reaches the server (and fails validation there) while an omitted flag
// leaves the column alone.
func (a *App) update(ctx context.Context, args []string) (any, error) {
	userID, err := parseUserIDArg(args)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	name := fs.String("name", "", "first name")
	surname := fs.String("surname", "", "last name")
	email := fs.String("email", "", "email address")

	if err = fs.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("update: %w", err)
	}

	var patch models.UserPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "surname":
			patch.Surname = surname
		case "email":
			patch.Email = email
		}
	})

	updatedID, err := a.adapter.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	return models.UpdatedUserResponse{UpdatedUserID: updatedID}, nil
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	userID, err := parseUserIDArg(args)
	if err != nil {
		return nil, err
	}

	deletedID, err := a.adapter.DeleteUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.DeletedUserResponse{DeletedUserID: deletedID}, nil
}

func parseUserIDArg(args []string) (uuid.UUID, error) {
	if len(args) == 0 {
		return uuid.Nil, fmt.Errorf("%w: user id", ErrMissingArgument)
	}

	userID, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrBadUserID, args[0])
	}

	return userID, nil
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
