// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// CoversBaseURL serves Open Library cover images.
const CoversBaseURL = "https://covers.openlibrary.org"

type httpBooksAPI struct {
	exec    *Executor
	limiter *rate.Limiter
}

// NewHTTPBooksAPI constructs the Open Library implementation of [BooksAPI].
// At most rps requests per second are sent; rps <= 0 disables the limit.
func NewHTTPBooksAPI(exec *Executor, rps float64) BooksAPI {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	return &httpBooksAPI{
		exec:    exec,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (b *httpBooksAPI) do(ctx context.Context, req Request, out any) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return b.exec.Do(ctx, req, out)
}

// SearchWorks implements [BooksAPI] via GET /search.json.
func (b *httpBooksAPI) SearchWorks(ctx context.Context, query string, limit int) (models.SearchResponse, error) {
	q := url.Values{"q": {query}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp models.SearchResponse
	if err := b.do(ctx, Request{Method: http.MethodGet, Path: "/search.json", Query: q}, &resp); err != nil {
		return models.SearchResponse{}, fmt.Errorf("search works request: %w", err)
	}
	return resp, nil
}

// GetWork implements [BooksAPI] via GET /works/{id}.json. Both "/works/OL1W"
// and "OL1W" are accepted.
func (b *httpBooksAPI) GetWork(ctx context.Context, workKey string) (models.Work, error) {
	id := models.WorkID(workKey)

	var work models.Work
	err := b.do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/works/" + url.PathEscape(id) + ".json",
	}, &work)
	if err != nil {
		return models.Work{}, fmt.Errorf("get work %s request: %w", id, err)
	}
	return work, nil
}

// GetAuthor implements [BooksAPI] via GET /authors/{id}.json.
func (b *httpBooksAPI) GetAuthor(ctx context.Context, authorKey string) (models.Author, error) {
	id := models.AuthorID(authorKey)

	var author models.Author
	err := b.do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/authors/" + url.PathEscape(id) + ".json",
	}, &author)
	if err != nil {
		return models.Author{}, fmt.Errorf("get author %s request: %w", id, err)
	}
	return author, nil
}

// GetSubject implements [BooksAPI] via GET /subjects/{subject}.json.
// Subjects are lower-cased with spaces turned into underscores.
func (b *httpBooksAPI) GetSubject(ctx context.Context, subject string, limit int) (models.SubjectResponse, error) {
	slug := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(subject)), " ", "_")

	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}

	var resp models.SubjectResponse
	err := b.do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/subjects/" + url.PathEscape(slug) + ".json",
		Query:  q,
	}, &resp)
	if err != nil {
		return models.SubjectResponse{}, fmt.Errorf("get subject %s request: %w", slug, err)
	}
	return resp, nil
}

// CoverURL implements [BooksAPI]. A non-positive coverID yields "".
func (b *httpBooksAPI) CoverURL(coverID int64, size models.CoverSize) string {
	if coverID <= 0 {
		return ""
	}
	switch size {
	case models.CoverSmall, models.CoverMedium, models.CoverLarge:
	default:
		size = models.CoverMedium
	}
	return fmt.Sprintf("%s/b/id/%d-%s.jpg", CoversBaseURL, coverID, size)
}
