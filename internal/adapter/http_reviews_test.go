// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

func reviewsServer(t *testing.T, status int, body string) ReviewsAPI {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	_, _, reviews := newTestAdapters(t, srv.URL)
	return reviews
}

func TestHTTPReviewsAPI_GetByBook(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[
			{"reviewId":1,"bookId":"OL1W","rating":"4.5","reviewText":null,"creationDate":"2026-03-01"},
			{"reviewId":2,"bookId":"OL1W","rating":3}
		]`))
	}))
	defer srv.Close()

	_, _, reviews := newTestAdapters(t, srv.URL)

	got, err := reviews.GetReviewsByBook(context.Background(), "/works/OL1W", "")
	require.NoError(t, err)
	assert.Equal(t, "/reviews/book/OL1W", gotPath)
	require.Len(t, got, 2)
	assert.InDelta(t, 4.5, got[0].Rating.Float64(), 1e-9)
	assert.Nil(t, got[0].ReviewText)
	assert.Equal(t, "2026-03-01", got[0].CreationDate.String())
	assert.InDelta(t, 3.0, got[1].Rating.Float64(), 1e-9)
}

func TestHTTPReviewsAPI_GetByBookMalformedIsEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"not json":   "<html>",
		"not a list": `{"unexpected":true}`,
		"empty":      "",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := reviewsServer(t, http.StatusOK, body).GetReviewsByBook(context.Background(), "OL1W", "")
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestHTTPReviewsAPI_GetByBookServerError(t *testing.T) {
	_, err := reviewsServer(t, http.StatusInternalServerError, `{"message":"db down"}`).
		GetReviewsByBook(context.Background(), "OL1W", "")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "db down", apiErr.Message)
}

func TestHTTPReviewsAPI_CreateValidatesRating(t *testing.T) {
	reviews := reviewsServer(t, http.StatusCreated, `{}`)

	_, err := reviews.CreateReview(context.Background(), "t", models.CreateReviewRequest{
		BookID: "OL1W",
		Title:  "t",
		Author: "a",
		Rating: 5.5,
	})

	assert.ErrorIs(t, err, validators.ErrValidation)
	assert.Equal(t, "rating: must be less than or equal to 5", Describe(err))
}

func TestHTTPReviewsAPI_UpdateSendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/reviews/7", r.URL.Path)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"rating": 2.5}, body)

		_, _ = w.Write([]byte(`{"reviewId":7,"rating":2.5}`))
	}))
	defer srv.Close()

	_, _, reviews := newTestAdapters(t, srv.URL)
	rating := 2.5

	got, err := reviews.UpdateReview(context.Background(), "t", 7, models.UpdateReviewRequest{Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ReviewID)
}

func TestHTTPReviewsAPI_MyCount(t *testing.T) {
	count, err := reviewsServer(t, http.StatusOK, "12").GetMyCount(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)

	_, err = reviewsServer(t, http.StatusOK, "12").GetMyCount(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenRequired)
}

func TestHTTPReviewsAPI_Delete(t *testing.T) {
	err := reviewsServer(t, http.StatusForbidden, `{"error":"Forbidden"}`).
		DeleteReview(context.Background(), "t", 3)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsForbidden())
	assert.Equal(t, "Forbidden", apiErr.Message)
}
