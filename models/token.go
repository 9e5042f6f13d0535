// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of the backend-issued JWT claims the client
// inspects. The client never verifies the signature: the token stays opaque
// and the backend remains the only authority on its validity.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// Expired reports whether the token carries an "exp" claim that lies before
// now. Tokens without an expiry never count as expired.
func (c TokenClaims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(c.ExpiresAt.Time)
}
