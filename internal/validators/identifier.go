// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/google/uuid"
)

// ParseUserID parses a user identifier taken from a path or message field.
func ParseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("user_id: %w", ErrInvalidUserIdentifier)
	}

	return id, nil
}
