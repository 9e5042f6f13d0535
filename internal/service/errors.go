// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package service

import "errors"

var (
	// ErrNotAuthenticated is returned when an operation needs a signed-in
	// user and the session holds none.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrTokenIsExpired = errors.New("token is expired")

	// ErrLibraryNotFound is returned when the user has no list titled
	// "Library".
	ErrLibraryNotFound = errors.New("library list not found")
)
