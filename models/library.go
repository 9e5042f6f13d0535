// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import "time"

// LibrarySnapshot is the result of one explicit refresh of the user's lists.
type LibrarySnapshot struct {
	// Library is the distinguished "Library" list; nil if the user has none.
	Library *BookList
	// Lists are the remaining lists, newest first.
	Lists []BookList
	// Items holds the items of every list that loaded, keyed by list ID.
	Items map[int64][]ListItem
	// Failed holds the per-list error of every list whose items did not load.
	Failed map[int64]error
	// FetchedAt is when the refresh completed.
	FetchedAt time.Time
}

// LibraryItems returns the items of the Library list, or nil.
func (s LibrarySnapshot) LibraryItems() []ListItem {
	if s.Library == nil {
		return nil
	}
	return s.Items[s.Library.ListID]
}
