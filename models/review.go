// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

// Review is a user's rating and optional text for one book.
type Review struct {
	ReviewID      int64   `json:"reviewId"`
	UserID        int64   `json:"userId"`
	Username      string  `json:"username"`
	BookID        string  `json:"bookId"`
	BookTitle     string  `json:"bookTitle"`
	BookAuthor    string  `json:"bookAuthor"`
	CoverImageURL *string `json:"coverImageUrl"`
	Rating        Rating  `json:"rating"`
	ReviewText    *string `json:"reviewText"`
	Likes         int     `json:"likes"`
	Visibility    bool    `json:"visibility"`
	CreationDate  Date    `json:"creationDate"`
}

// CreateReviewRequest is the body of POST /reviews.
type CreateReviewRequest struct {
	BookID        string  `json:"bookId" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	CoverImageURL *string `json:"coverImageUrl"`
	Rating        float64 `json:"rating" validate:"gte=0,lte=5"`
	ReviewText    *string `json:"reviewText"`
	Visibility    *bool   `json:"visibility"`
}

// UpdateReviewRequest is the partial body of PATCH /reviews/{id}; nil fields
// are omitted and left unchanged by the backend.
type UpdateReviewRequest struct {
	Rating     *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewText *string  `json:"reviewText,omitempty"`
	Visibility *bool    `json:"visibility,omitempty"`
}
