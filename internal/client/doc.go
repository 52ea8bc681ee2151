// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a sub-command (create, get, update, delete) with its own flags,
// performs it through an [adapter.UserAdapter] and prints the result as
// indented JSON.
package client
