// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_store_mock.go -package=mock

// SecretStore persists the session's bearer token between runs.
//
// A missing entry is not an error: Get reports it with ok=false.
type SecretStore interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}
