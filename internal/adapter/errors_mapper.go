// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
)

// mapTransportError classifies a failure that happened before any response.
func mapTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("request canceled: %w", err)
	default:
		return fmt.Errorf("%w: %w", ErrNetworkUnreachable, err)
	}
}

// mapHTTPResponse turns a status and raw body into either nil (after
// decoding into out) or an [*APIError].
//
// An empty 2xx body is success and leaves out untouched.
func mapHTTPResponse(status int, body []byte, out any) error {
	body = bytes.TrimSpace(body)

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &APIError{
				Status:    status,
				Message:   fmt.Sprintf("Malformed response (%d)", status),
				Malformed: true,
				cause:     err,
			}
		}
		return nil
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return &APIError{
			Status:    status,
			Message:   fmt.Sprintf("Server error (%d)", status),
			Malformed: true,
			cause:     err,
		}
	}

	return &APIError{
		Status:  status,
		Message: extractMessage(parsed, status),
		Body:    parsed,
	}
}

// extractMessage picks the most specific message out of a backend error
// body, trying in order: message, error, errors (list or map), fieldErrors,
// violations, the raw body, and finally a generic text.
func extractMessage(body any, status int) string {
	if m, ok := body.(map[string]any); ok {
		if s := nonBlankString(m["message"]); s != "" {
			return s
		}
		if s := nonBlankString(m["error"]); s != "" {
			return s
		}

		switch errs := m["errors"].(type) {
		case []any:
			if len(errs) > 0 {
				return joinErrorList(errs)
			}
		case map[string]any:
			if len(errs) > 0 {
				return joinErrorMap(errs)
			}
		}

		if s := joinFieldMessages(m["fieldErrors"]); s != "" {
			return s
		}
		if s := joinFieldMessages(m["violations"]); s != "" {
			return s
		}
	}

	if body != nil {
		if raw, err := json.Marshal(body); err == nil {
			return string(raw)
		}
	}

	return fmt.Sprintf("request failed with status %d", status)
}

func nonBlankString(v any) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func joinErrorList(errs []any) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		if m, ok := e.(map[string]any); ok {
			parts = append(parts, fieldMessage(m))
			continue
		}
		parts = append(parts, fmt.Sprint(e))
	}
	return strings.Join(parts, ", ")
}

func joinErrorMap(errs map[string]any) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		value := errs[k]
		if list, ok := value.([]any); ok {
			value = joinErrorList(list)
		}
		parts = append(parts, fmt.Sprintf("%s: %v", k, value))
	}
	return strings.Join(parts, ", ")
}

// joinFieldMessages renders an array of {field, defaultMessage|message}
// objects as "field: msg" pairs. Anything else yields "".
func joinFieldMessages(v any) string {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return ""
	}

	parts := make([]string, 0, len(list))
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		parts = append(parts, fieldMessage(m))
	}
	return strings.Join(parts, ", ")
}

func fieldMessage(m map[string]any) string {
	field := nonBlankString(m["field"])
	if field == "" {
		field = "field"
	}

	msg := nonBlankString(m["defaultMessage"])
	if msg == "" {
		msg = nonBlankString(m["message"])
	}
	if msg == "" {
		msg = "invalid"
	}

	return field + ": " + msg
}

// Describe renders any error returned by this package as a short text fit
// for the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Message
	}

	switch {
	case errors.Is(err, ErrTimeout):
		return "The server took too long to respond. Please try again."
	case errors.Is(err, ErrNetworkUnreachable):
		return "Cannot reach the server. Check your connection."
	case errors.Is(err, ErrTokenRequired):
		return "Please sign in first."
	case errors.Is(err, validators.ErrValidation):
		_, detail, _ := strings.Cut(err.Error(), validators.ErrValidation.Error()+": ")
		if detail != "" {
			return detail
		}
	}

	return err.Error()
}
