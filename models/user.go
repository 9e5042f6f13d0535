// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

// UserProfile is the full profile of the authenticated user as returned by
// GET /auth/me. It is an immutable snapshot; the client never edits it
// locally.
type UserProfile struct {
	UserID   int64   `json:"userId"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Bio      *string `json:"bio"`
	Privacy  bool    `json:"privacy"`
	Role     string  `json:"role"`
	JoinDate Date    `json:"joinDate"`
}

// UserSummary is the short user description embedded in [AuthResponse].
type UserSummary struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse is the body returned by POST /auth/login and
// POST /auth/register.
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
