// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

// Package adapter provides the transport layer between the Noveltea client
// and the services it talks to: the Noveltea REST backend and the Open
// Library metadata API.
//
// Every call goes through an [Executor], which attaches the bearer token,
// applies the fixed request timeout and maps failures onto [ErrTimeout],
// [ErrNetworkUnreachable] or [*APIError]. The domain modules ([AuthAPI],
// [ListsAPI], [ReviewsAPI], [BooksAPI]) are thin typed wrappers over it;
// they never retry and never swallow a failed mutation.
package adapter

import (
	"context"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAPI covers the /auth endpoints.
type AuthAPI interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Register creates an account and returns an access token for it.
	Register(ctx context.Context, username, email, password string) (models.AuthResponse, error)

	// Me returns the profile of the token's owner. It is also how a stored
	// token gets validated.
	Me(ctx context.Context, token string) (models.UserProfile, error)
}

// ListsAPI covers book lists and their items.
type ListsAPI interface {
	GetMyLists(ctx context.Context, token string) ([]models.BookList, error)
	GetListByID(ctx context.Context, token string, listID int64) (models.BookList, error)
	// GetListsByUser returns the lists of another user visible to the caller.
	// token may be empty.
	GetListsByUser(ctx context.Context, token string, userID int64) ([]models.BookList, error)
	// SearchPublicLists finds public lists by title. token may be empty.
	SearchPublicLists(ctx context.Context, token, title string) ([]models.BookList, error)

	GetListItems(ctx context.Context, token string, listID int64) ([]models.ListItem, error)
	AddToList(ctx context.Context, token string, req models.AddListItemRequest) (models.ListItem, error)
	RemoveFromList(ctx context.Context, token string, listItemID int64) error
	ReorderListItem(ctx context.Context, token string, listItemID int64, newSortOrder int) error

	CreateList(ctx context.Context, token string, req models.ListRequest) (models.BookList, error)
	UpdateList(ctx context.Context, token string, listID int64, req models.ListRequest) (models.BookList, error)
	DeleteList(ctx context.Context, token string, listID int64) error
}

// ReviewsAPI covers book reviews.
type ReviewsAPI interface {
	// GetReviewsByBook lists the reviews of one work. token may be empty.
	// An undecodable success body yields an empty slice; a failure status
	// is still an error.
	GetReviewsByBook(ctx context.Context, bookID, token string) ([]models.Review, error)
	CreateReview(ctx context.Context, token string, req models.CreateReviewRequest) (models.Review, error)
	UpdateReview(ctx context.Context, token string, reviewID int64, req models.UpdateReviewRequest) (models.Review, error)
	DeleteReview(ctx context.Context, token string, reviewID int64) error
	GetMyCount(ctx context.Context, token string) (int64, error)
}

// BooksAPI reads public book metadata. Calls are rate limited.
type BooksAPI interface {
	SearchWorks(ctx context.Context, query string, limit int) (models.SearchResponse, error)
	GetWork(ctx context.Context, workKey string) (models.Work, error)
	GetAuthor(ctx context.Context, authorKey string) (models.Author, error)
	GetSubject(ctx context.Context, subject string, limit int) (models.SubjectResponse, error)
	CoverURL(coverID int64, size models.CoverSize) string
}
