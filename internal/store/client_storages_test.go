// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/config"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/crypto"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
)

// ── NewClientStorages ─────────────────────────────────────────────────────────

func TestNewClientStorages_SQLiteBackendPersists(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{
		SecretBackend: config.SecretBackendSQLite,
		DB:            config.DB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}

	first, err := NewClientStorages(ctx, cfg, crypto.NewSealer("k"), logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.SecretStore.Set(ctx, "tok-persisted"))
	require.NoError(t, first.Close())

	// a fresh process sees the same token
	second, err := NewClientStorages(ctx, cfg, crypto.NewSealer("k"), logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	token, ok, err := second.SecretStore.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-persisted", token)

	require.NoError(t, second.SecretStore.Remove(ctx))
	_, ok, err = second.SecretStore.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewClientStorages_FileBackend(t *testing.T) {
	cfg := config.Storage{
		SecretBackend: config.SecretBackendFile,
		FilePath:      filepath.Join(t.TempDir(), "token"),
	}

	s, err := NewClientStorages(context.Background(), cfg, crypto.NewSealer(""), logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.IsType(t, &fileSecretStore{}, s.SecretStore)
}

func TestNewClientStorages_UnknownBackend(t *testing.T) {
	_, err := NewClientStorages(context.Background(), config.Storage{SecretBackend: "keyring"}, crypto.NewSealer(""), logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

// ── ClearBestEffort ───────────────────────────────────────────────────────────

type failingRemoveStore struct {
	SecretStore
	calls int
}

func (f *failingRemoveStore) Remove(context.Context) error {
	f.calls++
	return errors.New("keychain locked")
}

func TestClearBestEffort_SwallowsFailure(t *testing.T) {
	s := &failingRemoveStore{}

	assert.NotPanics(t, func() {
		ClearBestEffort(context.Background(), s, logger.Nop())
	})
	assert.Equal(t, 1, s.calls)
}
