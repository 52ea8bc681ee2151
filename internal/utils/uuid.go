// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers (UUIDv7). When the v7
// generator fails, a random v4 identifier is returned instead.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// New returns a fresh identifier.
func (g *UUIDGenerator) New() uuid.UUID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return v7
}

// Generate returns a fresh identifier in its canonical string form.
func (g *UUIDGenerator) Generate() string {
	return g.New().String()
}
