// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across layers: identifier
// generation, JSON response writing and the resty-based HTTP client.
package utils
