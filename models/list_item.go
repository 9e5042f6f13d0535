// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

// ListItem is one book's membership in one list.
type ListItem struct {
	ListItemID    int64   `json:"listItemId"`
	ListID        int64   `json:"listId"`
	BookID        string  `json:"bookId"`
	BookTitle     string  `json:"bookTitle"`
	BookAuthor    string  `json:"bookAuthor"`
	CoverImageURL *string `json:"coverImageUrl"`
	SortOrder     int     `json:"sortOrder"`
	AddedDate     Date    `json:"addedDate"`
}

// AddListItemRequest is the body of POST /list-items. It carries the
// denormalised book metadata so the backend can cache the book without
// querying the book-metadata API again.
type AddListItemRequest struct {
	ListID        int64   `json:"listId" validate:"required"`
	BookID        string  `json:"bookId" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	CoverImageURL *string `json:"coverImageUrl"`
}

// BookRef is the minimal book description needed to put a book on a list.
type BookRef struct {
	BookID        string
	Title         string
	Author        string
	CoverImageURL *string
}
