// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package service

import (
	"context"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the authentication state of the client. It is
// the only writer of that state; everything else reads it through Current
// or Subscribe.
type ClientSessionService interface {
	// Restore revalidates a persisted token once at startup and moves the
	// session out of Restoring. It never fails: any problem with the stored
	// token ends in an anonymous session and a best-effort removal of the
	// token.
	Restore(ctx context.Context) models.Session

	// Login exchanges credentials for a token, loads the full profile with
	// it, persists it and publishes the authenticated session.
	// On any failure the session is left unchanged and the error returned.
	Login(ctx context.Context, email, password string) error

	// Register creates an account and signs into it, following the same
	// steps as Login.
	Register(ctx context.Context, username, email, password string) error

	// Logout clears the stored token on a best-effort basis and always
	// publishes an anonymous session.
	Logout(ctx context.Context)

	// Current returns the latest session snapshot.
	Current() models.Session

	// Token returns the bearer token, or "" unless authenticated.
	Token() string

	// User returns the profile, or nil unless authenticated.
	User() *models.UserProfile

	// Subscribe registers fn to be called with every published snapshot.
	// The returned func removes the subscription.
	Subscribe(fn func(models.Session)) (unsubscribe func())
}

// ClientLibraryService covers the user's own lists and the distinguished
// "Library" list. Every method needs an authenticated session.
type ClientLibraryService interface {
	// MyLists returns the user's lists except Library, newest first.
	MyLists(ctx context.Context) ([]models.BookList, error)

	// LoadItems fetches the items of every listed list concurrently. A
	// failure of one list never affects another: each outcome lands under
	// its own list ID in exactly one of the two maps.
	LoadItems(ctx context.Context, listIDs []int64) (map[int64][]models.ListItem, map[int64]error)

	// InLibrary reports whether the book is on the Library list and returns
	// its list item if so.
	InLibrary(ctx context.Context, bookID string) (*models.ListItem, error)

	// ToggleInLibrary adds the book to Library when absent and removes it
	// otherwise. It returns whether the book is in Library afterwards.
	ToggleInLibrary(ctx context.Context, book models.BookRef) (bool, error)

	// Refresh re-fetches the user's lists and all of their items.
	Refresh(ctx context.Context) (models.LibrarySnapshot, error)
}
