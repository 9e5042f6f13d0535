// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"errors"
	"net/http"
)

// Transport-level failures. Both are transient; the caller decides whether to
// try again.
var (
	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrNetworkUnreachable is returned when the transport fails before any
	// response arrives.
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrTokenRequired is returned before any I/O when an authenticated
	// endpoint is called without a token.
	ErrTokenRequired = errors.New("bearer token required")
)

// APIError is a response the backend produced with a failure status, or a
// success response whose body could not be decoded.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the human-readable message extracted from the body.
	Message string

	// Body is the decoded JSON body; nil when the body was not JSON.
	Body any

	// Malformed is set when the body could not be parsed as JSON.
	Malformed bool

	cause error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func (e *APIError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func (e *APIError) IsForbidden() bool {
	return e.Status == http.StatusForbidden
}

// AsAPIError unwraps err to an [*APIError], if it holds one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
