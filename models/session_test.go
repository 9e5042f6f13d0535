// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Authenticated(t *testing.T) {
	user := &UserProfile{UserID: 1, Username: "ana"}

	assert.True(t, Session{Status: SessionAuthenticated, User: user, Token: "tok"}.Authenticated())
	assert.False(t, Session{Status: SessionAuthenticated, User: user}.Authenticated())
	assert.False(t, Session{Status: SessionAuthenticated, Token: "tok"}.Authenticated())
	assert.False(t, Session{Status: SessionRestoring, User: user, Token: "tok"}.Authenticated())
	assert.False(t, Session{}.Authenticated())
}

func TestSessionStatus_String(t *testing.T) {
	assert.Equal(t, "restoring", SessionRestoring.String())
	assert.Equal(t, "anonymous", SessionAnonymous.String())
	assert.Equal(t, "authenticated", SessionAuthenticated.String())
	assert.Equal(t, "unknown", SessionStatus(42).String())
}

func TestTokenClaims_Expired(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, TokenClaims{}.Expired(now), "no exp never expires")

	past := TokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second))}}
	assert.True(t, past.Expired(now))

	exact := TokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now)}}
	assert.True(t, exact.Expired(now))

	future := TokenClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}
	assert.False(t, future.Expired(now))
}

func TestWorkID(t *testing.T) {
	assert.Equal(t, "OL45804W", WorkID("/works/OL45804W"))
	assert.Equal(t, "OL45804W", WorkID(" OL45804W "))
	assert.Equal(t, WorkID("/works/OL1W"), WorkID("OL1W"))
	assert.Equal(t, "OL23919A", AuthorID("/authors/OL23919A"))
}

func TestTextValue_UnmarshalJSON(t *testing.T) {
	var got struct {
		Plain  TextValue `json:"plain"`
		Typed  TextValue `json:"typed"`
		Absent TextValue `json:"absent"`
	}

	err := json.Unmarshal([]byte(`{"plain": "A story", "typed": {"type": "/type/text", "value": "Typed story"}, "absent": null}`), &got)
	require.NoError(t, err)

	assert.Equal(t, TextValue("A story"), got.Plain)
	assert.Equal(t, TextValue("Typed story"), got.Typed)
	assert.Empty(t, got.Absent)
}

func TestBookList_IsLibrary(t *testing.T) {
	assert.True(t, BookList{Title: "Library"}.IsLibrary())
	assert.False(t, BookList{Title: "library"}.IsLibrary())
	assert.False(t, BookList{Title: " Library"}.IsLibrary())
}
