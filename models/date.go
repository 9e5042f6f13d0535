// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout the backend uses for LocalDate
// fields (joinDate, creationDate, addedDate).
const DateLayout = "2006-01-02"

// Date is a calendar date serialised as "YYYY-MM-DD".
//
// Decoding also accepts full RFC 3339 timestamps and JSON null (zero Date),
// so a backend that switches to LocalDateTime does not break the client.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON implements [json.Unmarshaler].
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = Date{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		*d = Date{}
		return nil
	}

	if t, err := time.Parse(DateLayout, raw); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", raw, err)
	}
	*d = NewDate(t)
	return nil
}

// MarshalJSON implements [json.Marshaler]. A zero Date encodes as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

// String returns the date as "YYYY-MM-DD", or an empty string for a zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
