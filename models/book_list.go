// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

// LibraryListTitle is the title of the distinguished per-user default list
// used as the save-for-later collection.
//
// The list is recognised purely by an exact title match, so a user-created
// list that happens to be called "Library" is indistinguishable from it.
const LibraryListTitle = "Library"

// BookList is a server-owned reading list snapshot.
type BookList struct {
	ListID          int64   `json:"listId"`
	CreatorID       int64   `json:"creatorId"`
	CreatorUsername string  `json:"creatorUsername"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	Visibility      bool    `json:"visibility"`
	CreationDate    Date    `json:"creationDate"`
	BookCount       int     `json:"bookCount"`
}

// IsLibrary reports whether l is the distinguished "Library" list.
func (l BookList) IsLibrary() bool {
	return l.Title == LibraryListTitle
}

// ListRequest is the body of POST /lists and PUT /lists/{id}.
// A nil Description is sent as JSON null.
type ListRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description"`
	Visibility  bool    `json:"visibility"`
}
