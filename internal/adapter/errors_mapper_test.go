// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
)

// ── extractMessage ───────────────────────────────────────────────────────────

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{
			name: "message wins",
			body: map[string]any{"message": "List not found", "error": "Not Found"},
			want: "List not found",
		},
		{
			name: "blank message falls through to error",
			body: map[string]any{"message": "  ", "error": "Forbidden"},
			want: "Forbidden",
		},
		{
			name: "errors list of strings",
			body: map[string]any{"errors": []any{"a", "b"}},
			want: "a, b",
		},
		{
			name: "errors list of objects",
			body: map[string]any{"errors": []any{
				map[string]any{"field": "title", "defaultMessage": "must not be blank"},
			}},
			want: "title: must not be blank",
		},
		{
			name: "errors map sorted by key",
			body: map[string]any{"errors": map[string]any{"title": "required", "rating": "too high"}},
			want: "rating: too high, title: required",
		},
		{
			name: "errors map with list values",
			body: map[string]any{"errors": map[string]any{"email": []any{"bad", "worse"}, "username": "taken"}},
			want: "email: bad, worse, username: taken",
		},
		{
			name: "field errors",
			body: map[string]any{"fieldErrors": []any{map[string]any{"field": "email"}}},
			want: "email: invalid",
		},
		{
			name: "violations",
			body: map[string]any{"violations": []any{
				map[string]any{"field": "rating", "message": "must be <= 5"},
				map[string]any{"message": "bad"},
			}},
			want: "rating: must be <= 5, field: bad",
		},
		{
			name: "unknown object is echoed",
			body: map[string]any{"code": float64(7)},
			want: `{"code":7}`,
		},
		{
			name: "plain string body",
			body: "boom",
			want: `"boom"`,
		},
		{
			name: "nil body",
			body: nil,
			want: "request failed with status 418",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractMessage(tt.body, http.StatusTeapot))
		})
	}
}

// ── mapHTTPResponse ──────────────────────────────────────────────────────────

func TestMapHTTPResponse_ErrorKeepsBody(t *testing.T) {
	err := mapHTTPResponse(http.StatusBadRequest, []byte(`{"message":"Rating must be between 0 and 5"}`), nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Rating must be between 0 and 5", apiErr.Message)
	assert.Equal(t, map[string]any{"message": "Rating must be between 0 and 5"}, apiErr.Body)
}

func TestMapHTTPResponse_ErrorMapWithLists(t *testing.T) {
	err := mapHTTPResponse(http.StatusBadRequest, []byte(`{"errors":{"email":["bad","worse"]}}`), nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "email: bad, worse", apiErr.Message)
}

func TestMapHTTPResponse_EmptyErrorBody(t *testing.T) {
	err := mapHTTPResponse(http.StatusInternalServerError, nil, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "Server error (500)", apiErr.Message)
	assert.True(t, apiErr.Malformed)
}

func TestMapHTTPResponse_DecodesSuccess(t *testing.T) {
	var n int64
	require.NoError(t, mapHTTPResponse(http.StatusOK, []byte(" 42\n"), &n))
	assert.Equal(t, int64(42), n)
}

// ── mapTransportError ────────────────────────────────────────────────────────

func TestMapTransportError(t *testing.T) {
	assert.ErrorIs(t, mapTransportError(context.DeadlineExceeded), ErrTimeout)
	assert.ErrorIs(t, mapTransportError(errors.New("connection refused")), ErrNetworkUnreachable)

	canceled := mapTransportError(context.Canceled)
	assert.ErrorIs(t, canceled, context.Canceled)
	assert.NotErrorIs(t, canceled, ErrNetworkUnreachable)
}

// ── Describe ─────────────────────────────────────────────────────────────────

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "api error",
			err:  fmt.Errorf("login request: %w", &APIError{Status: 401, Message: "Invalid email or password"}),
			want: "Invalid email or password",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("me request: %w", ErrTimeout),
			want: "The server took too long to respond. Please try again.",
		},
		{
			name: "unreachable",
			err:  ErrNetworkUnreachable,
			want: "Cannot reach the server. Check your connection.",
		},
		{name: "token", err: ErrTokenRequired, want: "Please sign in first."},
		{
			name: "validation",
			err:  fmt.Errorf("create list: %w: title: is required", validators.ErrValidation),
			want: "title: is required",
		},
		{name: "other", err: errors.New("disk full"), want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}
