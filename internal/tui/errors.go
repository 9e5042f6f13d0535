// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	"errors"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
)

// humanizeError turns an error from the service layer into the text shown
// on screen.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Your session has ended. Please sign in again."
	case errors.Is(err, service.ErrLibraryNotFound):
		return "You have no Library list yet."
	default:
		return adapter.Describe(err)
	}
}
