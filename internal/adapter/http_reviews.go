// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

type httpReviewsAPI struct {
	exec      *Executor
	validator validators.Validator
}

// NewHTTPReviewsAPI constructs the REST implementation of [ReviewsAPI].
func NewHTTPReviewsAPI(exec *Executor, validator validators.Validator) ReviewsAPI {
	return &httpReviewsAPI{exec: exec, validator: validator}
}

// GetReviewsByBook implements [ReviewsAPI]. A success body that is not a
// JSON array of reviews degrades to an empty slice.
func (r *httpReviewsAPI) GetReviewsByBook(ctx context.Context, bookID, token string) ([]models.Review, error) {
	var raw json.RawMessage
	err := r.exec.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/reviews/book/" + url.PathEscape(models.WorkID(bookID)),
		Token:  token,
	}, &raw)
	if apiErr, ok := AsAPIError(err); ok && apiErr.Malformed && apiErr.Status < http.StatusMultipleChoices {
		return []models.Review{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reviews of book %s request: %w", bookID, err)
	}

	reviews := make([]models.Review, 0)
	if len(raw) == 0 {
		return reviews, nil
	}
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return []models.Review{}, nil
	}
	return reviews, nil
}

func (r *httpReviewsAPI) CreateReview(ctx context.Context, token string, req models.CreateReviewRequest) (models.Review, error) {
	if err := r.validator.Validate(ctx, req); err != nil {
		return models.Review{}, fmt.Errorf("create review: %w", err)
	}

	var review models.Review
	err := r.exec.Do(ctx, Request{
		Method:       http.MethodPost,
		Path:         "/reviews",
		Body:         req,
		Token:        token,
		RequireToken: true,
	}, &review)
	if err != nil {
		return models.Review{}, fmt.Errorf("create review request: %w", err)
	}
	return review, nil
}

// UpdateReview implements [ReviewsAPI]. Only the non-nil fields of req are
// sent.
func (r *httpReviewsAPI) UpdateReview(ctx context.Context, token string, reviewID int64, req models.UpdateReviewRequest) (models.Review, error) {
	if err := r.validator.Validate(ctx, req); err != nil {
		return models.Review{}, fmt.Errorf("update review: %w", err)
	}

	var review models.Review
	err := r.exec.Do(ctx, Request{
		Method:       http.MethodPatch,
		Path:         "/reviews/" + strconv.FormatInt(reviewID, 10),
		Body:         req,
		Token:        token,
		RequireToken: true,
	}, &review)
	if err != nil {
		return models.Review{}, fmt.Errorf("update review %d request: %w", reviewID, err)
	}
	return review, nil
}

func (r *httpReviewsAPI) DeleteReview(ctx context.Context, token string, reviewID int64) error {
	err := r.exec.Do(ctx, Request{
		Method:       http.MethodDelete,
		Path:         "/reviews/" + strconv.FormatInt(reviewID, 10),
		Token:        token,
		RequireToken: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete review %d request: %w", reviewID, err)
	}
	return nil
}

func (r *httpReviewsAPI) GetMyCount(ctx context.Context, token string) (int64, error) {
	var count int64
	err := r.exec.Do(ctx, Request{
		Method:       http.MethodGet,
		Path:         "/reviews/me/count",
		Token:        token,
		RequireToken: true,
	}, &count)
	if err != nil {
		return 0, fmt.Errorf("get my review count request: %w", err)
	}
	return count, nil
}
