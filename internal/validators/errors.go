// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldRequired         = errors.New("field required")
	ErrFieldOnlyLetters      = errors.New("field should contain only letters")
	ErrFieldEmpty            = errors.New("field should have at least 1 character")
	ErrInvalidEmail          = errors.New("value is not a valid email address")
	ErrNothingToUpdate       = errors.New("at least one parameter should be provided for update")
	ErrInvalidUserIdentifier = errors.New("value is not a valid uuid")
)
