// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation marks every error caused by a malformed request.
	ErrValidation = errors.New("validation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries the broken rule of a rejected request. It matches
// both ErrValidation and the underlying validators sentinel with errors.Is,
// while its message is the rule message alone.
type ValidationError struct {
	Err error
}

func NewValidationError(err error) error {
	return &ValidationError{Err: err}
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
