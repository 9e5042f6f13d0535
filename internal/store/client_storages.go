// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import (
	"context"
	"fmt"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/config"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/crypto"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
)

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// SecretStore keeps the bearer token between runs.
	SecretStore SecretStore

	db *DB
}

// NewClientStorages initialises the secret store selected by
// cfg.SecretBackend:
//   - "sqlite": opens (creating if needed) the SQLite file at cfg.DB.DSN and
//     runs pending migrations via [DB.Migrate].
//   - "file": uses the single token file at cfg.FilePath.
//
// Any other backend yields [ErrUnknownBackend].
func NewClientStorages(ctx context.Context, cfg config.Storage, sealer crypto.Sealer, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("backend", cfg.SecretBackend).Msg("creating client storages...")

	switch cfg.SecretBackend {
	case config.SecretBackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{
			SecretStore: NewSQLiteSecretStore(db, sealer, log),
			db:          db,
		}, nil
	case config.SecretBackendFile:
		return &ClientStorages{
			SecretStore: NewFileSecretStore(cfg.FilePath, sealer, log),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.SecretBackend)
	}
}

// Close releases the database handle, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// ClearBestEffort removes the stored token and only logs a failure.
func ClearBestEffort(ctx context.Context, s SecretStore, log *logger.Logger) {
	if err := s.Remove(ctx); err != nil {
		log.Warn().Err(err).Str("func", "store.ClearBestEffort").Msg("failed to remove stored token")
	}
}
