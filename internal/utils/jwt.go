// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// ErrNotJWT is returned by [ParseTokenClaimsUnverified] when the token is
// not shaped like a JWT at all.
var ErrNotJWT = errors.New("token is not a JWT")

// ParseTokenClaimsUnverified decodes the registered claims of a JWT without
// checking its signature. The client holds no key; the result is only good
// for local hints such as an early expiry check.
//
// Returns [ErrNotJWT] for tokens that are not three dot-separated segments,
// and a wrapped parser error for malformed ones.
//
// Example usage:
//
//	claims, err := utils.ParseTokenClaimsUnverified(token)
//	if err == nil && claims.Expired(time.Now()) {
//	    // discard the token without a network call
//	}
func ParseTokenClaimsUnverified(tokenString string) (models.TokenClaims, error) {
	if strings.Count(tokenString, ".") != 2 {
		return models.TokenClaims{}, ErrNotJWT
	}

	var claims models.TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred parsing token claims: %w", err)
	}

	return claims, nil
}
