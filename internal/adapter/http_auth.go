// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

type httpAuthAPI struct {
	exec      *Executor
	validator validators.Validator
}

// NewHTTPAuthAPI constructs the REST implementation of [AuthAPI].
func NewHTTPAuthAPI(exec *Executor, validator validators.Validator) AuthAPI {
	return &httpAuthAPI{exec: exec, validator: validator}
}

// Login implements [AuthAPI]. It POSTs {email, password} to /auth/login.
// A success body without an access token is reported as a malformed
// [*APIError].
func (a *httpAuthAPI) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	body := models.LoginRequest{Email: email, Password: password}
	if err := a.validator.Validate(ctx, body); err != nil {
		return models.AuthResponse{}, fmt.Errorf("login: %w", err)
	}

	var resp models.AuthResponse
	err := a.exec.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   body,
	}, &resp)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}

	return resp, requireAccessToken(resp)
}

// Register implements [AuthAPI]. It POSTs {username, email, password} to
// /auth/register.
func (a *httpAuthAPI) Register(ctx context.Context, username, email, password string) (models.AuthResponse, error) {
	body := models.RegisterRequest{Username: username, Email: email, Password: password}
	if err := a.validator.Validate(ctx, body); err != nil {
		return models.AuthResponse{}, fmt.Errorf("register: %w", err)
	}

	var resp models.AuthResponse
	err := a.exec.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   body,
	}, &resp)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}

	return resp, requireAccessToken(resp)
}

// Me implements [AuthAPI]. It GETs /auth/me with token.
func (a *httpAuthAPI) Me(ctx context.Context, token string) (models.UserProfile, error) {
	var profile models.UserProfile
	err := a.exec.Do(ctx, Request{
		Method:       http.MethodGet,
		Path:         "/auth/me",
		Token:        token,
		RequireToken: true,
	}, &profile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("me request: %w", err)
	}

	return profile, nil
}

func requireAccessToken(resp models.AuthResponse) error {
	if resp.AccessToken == "" {
		return &APIError{
			Status:    http.StatusOK,
			Message:   "Malformed response: missing access token",
			Malformed: true,
		}
	}
	return nil
}
