// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

func newOpenLibraryStub(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/search.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "the hobbit", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{
			"numFound": 1,
			"docs": []map[string]any{{
				"key":         "/works/OL262758W",
				"title":       "The Hobbit",
				"author_name": []string{"J.R.R. Tolkien"},
				"cover_i":     14627509,
			}},
		})
	})
	r.Get("/works/{id}.json", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "OL262758W" {
			writeProblem(w, http.StatusNotFound, "not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"key":         "/works/OL262758W",
			"title":       "The Hobbit",
			"description": map[string]any{"type": "/type/text", "value": "There and back again."},
			"covers":      []int64{14627509},
			"authors":     []map[string]any{{"author": map[string]any{"key": "/authors/OL26320A"}}},
		})
	})
	r.Get("/authors/{id}.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"key":  "/authors/" + chi.URLParam(r, "id"),
			"name": "J.R.R. Tolkien",
			"bio":  "English writer.",
		})
	})
	r.Get("/subjects/{slug}.json", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "science_fiction", chi.URLParam(r, "slug"))
		writeJSON(w, http.StatusOK, map[string]any{
			"name":       "science fiction",
			"work_count": 2,
			"works":      []map[string]any{{"key": "/works/OL1W", "title": "Dune", "cover_id": 1}},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPBooksAPI_SearchWorks(t *testing.T) {
	books := NewHTTPBooksAPI(newTestExecutor(t, newOpenLibraryStub(t).URL, time.Second), 0)

	resp, err := books.SearchWorks(context.Background(), "the hobbit", 5)
	require.NoError(t, err)
	require.Len(t, resp.Docs, 1)
	assert.Equal(t, "OL262758W", models.WorkID(resp.Docs[0].Key))
	assert.Equal(t, int64(14627509), resp.Docs[0].CoverID)
}

func TestHTTPBooksAPI_GetWorkAcceptsBothKeyForms(t *testing.T) {
	books := NewHTTPBooksAPI(newTestExecutor(t, newOpenLibraryStub(t).URL, time.Second), 0)
	ctx := context.Background()

	for _, key := range []string{"/works/OL262758W", "OL262758W"} {
		work, err := books.GetWork(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, "The Hobbit", work.Title)
		assert.Equal(t, models.TextValue("There and back again."), work.Description)
		require.Len(t, work.Authors, 1)
		assert.Equal(t, "/authors/OL26320A", work.Authors[0].Author.Key)
	}

	_, err := books.GetWork(ctx, "OL0W")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsNotFound())
}

func TestHTTPBooksAPI_GetAuthorAndSubject(t *testing.T) {
	books := NewHTTPBooksAPI(newTestExecutor(t, newOpenLibraryStub(t).URL, time.Second), 0)
	ctx := context.Background()

	author, err := books.GetAuthor(ctx, "/authors/OL26320A")
	require.NoError(t, err)
	assert.Equal(t, "/authors/OL26320A", author.Key)
	assert.Equal(t, models.TextValue("English writer."), author.Bio)

	subject, err := books.GetSubject(ctx, " Science Fiction ", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, subject.WorkCount)
	require.Len(t, subject.Works, 1)
	assert.Equal(t, "Dune", subject.Works[0].Title)
}

func TestHTTPBooksAPI_CoverURL(t *testing.T) {
	books := NewHTTPBooksAPI(newTestExecutor(t, "localhost:1", time.Second), 0)

	assert.Equal(t, "https://covers.openlibrary.org/b/id/42-L.jpg", books.CoverURL(42, models.CoverLarge))
	assert.Equal(t, "https://covers.openlibrary.org/b/id/42-S.jpg", books.CoverURL(42, models.CoverSmall))
	assert.Equal(t, "https://covers.openlibrary.org/b/id/42-M.jpg", books.CoverURL(42, "XL"))
	assert.Empty(t, books.CoverURL(0, models.CoverMedium))
	assert.Empty(t, books.CoverURL(-1, models.CoverMedium))
}

func TestHTTPBooksAPI_RateLimited(t *testing.T) {
	srv := newOpenLibraryStub(t)
	books := NewHTTPBooksAPI(newTestExecutor(t, srv.URL, time.Second), 0.5)

	_, err := books.GetWork(context.Background(), "OL262758W")
	require.NoError(t, err)

	// The single token is spent; the next one is two seconds away.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = books.GetWork(ctx, "OL262758W")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limiter")
}
