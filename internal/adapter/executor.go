// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/utils"
)

// DefaultRequestTimeout is used when the configured timeout is not positive.
const DefaultRequestTimeout = 8000 * time.Millisecond

// Request describes one call to a JSON HTTP API.
type Request struct {
	Method string
	// Path is appended to the base URL as is; it must start with "/".
	Path  string
	Query url.Values
	// Body is encoded as JSON when non-nil.
	Body any
	// Token, when non-empty, is sent as "Authorization: Bearer <token>".
	Token string
	// RequireToken makes an empty Token fail with ErrTokenRequired.
	RequireToken bool
}

// Executor performs JSON requests against one base URL. It holds no
// per-call state and is safe for concurrent use.
type Executor struct {
	client  *utils.HTTPClient
	ids     *utils.RequestIDGenerator
	baseURL string
	logger  *logger.Logger
}

// NewExecutor normalises baseURL and configures the underlying HTTP client
// with a fixed per-request timeout.
//
// Returns an error if baseURL is empty or cannot be parsed as a URL.
func NewExecutor(baseURL string, timeout time.Duration, log *logger.Logger) (*Executor, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Executor{
		client:  utils.NewHTTPClient(normalized, timeout),
		ids:     utils.NewRequestIDGenerator(),
		baseURL: normalized,
		logger:  log,
	}, nil
}

// BaseURL returns the normalised base URL.
func (e *Executor) BaseURL() string {
	return e.baseURL
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimSuffix(u.String(), "/"), nil
}

// Do sends req and decodes a successful JSON body into out (which may be
// nil).
//
// Failures:
//   - [ErrTokenRequired] before any I/O when req.RequireToken has no token;
//   - [ErrTimeout] / [ErrNetworkUnreachable] when no response arrived;
//   - [*APIError] for non-2xx responses and undecodable 2xx bodies.
func (e *Executor) Do(ctx context.Context, req Request, out any) error {
	if req.RequireToken && req.Token == "" {
		return ErrTokenRequired
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = e.ids.Generate()
	}

	r := e.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)
	if req.Token != "" {
		r.SetHeader("Authorization", "Bearer "+req.Token)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		e.logger.Debug().
			Err(err).
			Str("func", "Executor.Do").
			Str("request_id", requestID).
			Str("method", req.Method).
			Str("path", req.Path).
			Dur("duration", time.Since(start)).
			Msg("request failed before response")
		return mapTransportError(err)
	}

	e.logger.Debug().
		Str("func", "Executor.Do").
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	return mapHTTPResponse(resp.StatusCode(), resp.Body(), out)
}
