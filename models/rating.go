// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Rating is a review score in the 0..5 range.
//
// The backend serialises ratings as BigDecimal, which may arrive either as a
// JSON number or as a JSON string. Both decode into a finite float; anything
// else (null, garbage, NaN, ±Inf) becomes 0.
type Rating float64

// ToNumber coerces an arbitrary decoded JSON value into a finite float64.
// Numbers are taken as-is, strings are parsed leniently (surrounding spaces
// are ignored) and every other input yields 0.
func ToNumber(v any) float64 {
	var n float64

	switch value := v.(type) {
	case float64:
		n = value
	case float32:
		n = float64(value)
	case int:
		n = float64(value)
	case int64:
		n = float64(value)
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// UnmarshalJSON implements [json.Unmarshaler]. It never fails: values that
// cannot be coerced decode as 0.
func (r *Rating) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		*r = 0
		return nil
	}

	*r = Rating(ToNumber(raw))
	return nil
}

// Float64 returns the rating as a plain float64.
func (r Rating) Float64() float64 {
	return float64(r)
}
