// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package utils

import "github.com/google/uuid"

// RequestIDGenerator hands out time-ordered request IDs.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4 if the clock
// source fails.
func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
