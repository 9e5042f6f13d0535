// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the sign-in flow. A nil Err means the session is now
// authenticated.
type AuthResult struct {
	Err error
}

type snapshotMsg struct {
	snap       models.LibrarySnapshot
	err        error
	background bool
}

type toggledMsg struct {
	title     string
	inLibrary bool
	err       error
}

type removedMsg struct {
	listItemID int64
	err        error
}

type copiedMsg struct {
	value string
	err   error
}

type bookMsg struct {
	workID     string
	work       models.Work
	workErr    error
	reviews    []models.Review
	reviewsErr error
}

type reviewCountMsg struct {
	count int64
	err   error
}

type clearStatusMsg struct{}
