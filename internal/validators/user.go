// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-user-keeper/models"
	"github.com/go-playground/validator/v10"
)

const (
	FieldName    = "name"
	FieldSurname = "surname"
	FieldEmail   = "email"
)

// letterMatchPattern accepts Latin and Cyrillic letters and hyphens.
var letterMatchPattern = regexp.MustCompile(`^[а-яА-Яa-zA-Z\-]+$`)

// UserValidator checks user request schemas before they reach storage.
// Struct rules are declared with `validate` tags on the models and executed
// by go-playground/validator; the custom "letters" tag is registered here.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names (name, surname, email) instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return letterMatchPattern.MatchString(fl.Field().String())
	})

	return &UserValidator{validate: v}
}

// Validate accepts [models.CreateUserRequest] and [models.UserPatch]
// (values or pointers). For a patch, fields restricts the check to the
// listed field names; the "nothing to update" rule always applies.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, value)
	case *models.CreateUserRequest:
		return v.validateCreateUserRequest(ctx, *value)

	case models.UserPatch:
		return v.validateUserPatch(ctx, value, fields...)
	case *models.UserPatch:
		return v.validateUserPatch(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCreateUserRequest(ctx context.Context, req models.CreateUserRequest) error {
	err := v.validate.StructCtx(ctx, req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	// first broken rule wins, in declaration order
	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "required":
		if fieldErr.Field() == FieldEmail {
			return fmt.Errorf("%s: %w", fieldErr.Field(), ErrInvalidEmail)
		}
		return fmt.Errorf("%s: %w", fieldErr.Field(), ErrFieldOnlyLetters)
	case "letters":
		return fmt.Errorf("%s: %w", fieldErr.Field(), ErrFieldOnlyLetters)
	case "email":
		return fmt.Errorf("%s: %w", fieldErr.Field(), ErrInvalidEmail)
	default:
		return fmt.Errorf("%s: %w", fieldErr.Field(), ErrFieldRequired)
	}
}

func (v *UserValidator) validateUserPatch(ctx context.Context, patch models.UserPatch, fields ...string) error {
	if patch.IsEmpty() {
		return ErrNothingToUpdate
	}

	if len(fields) == 0 {
		fields = []string{FieldName, FieldSurname, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if patch.Name != nil && *patch.Name == "" {
				return fmt.Errorf("%s: %w", FieldName, ErrFieldEmpty)
			}
		case FieldSurname:
			if patch.Surname != nil && *patch.Surname == "" {
				return fmt.Errorf("%s: %w", FieldSurname, ErrFieldEmpty)
			}
		case FieldEmail:
			if patch.Email == nil {
				continue
			}
			if err := v.validate.VarCtx(ctx, *patch.Email, "required,email"); err != nil {
				return fmt.Errorf("%s: %w", FieldEmail, ErrInvalidEmail)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
