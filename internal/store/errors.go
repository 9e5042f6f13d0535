// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import "errors"

// Sentinel errors returned by secret store backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnknownBackend is returned by [NewClientStorages] when the configured
	// secret backend is neither "sqlite" nor "file".
	ErrUnknownBackend = errors.New("unknown secret store backend")

	// ErrSecretUnreadable is returned by Get when an entry exists but cannot
	// be opened, typically because the sealing passphrase changed.
	ErrSecretUnreadable = errors.New("stored secret cannot be read")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
