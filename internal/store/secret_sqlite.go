// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/crypto"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
)

// AuthTokenKey is the single entry name under which the bearer token lives.
const AuthTokenKey = "noveltea_auth_token"

type sqliteSecretStore struct {
	db     *DB
	sealer crypto.Sealer
	key    string
	logger *logger.Logger
}

// NewSQLiteSecretStore returns a [SecretStore] backed by the secrets table.
// Values are passed through sealer before they hit the disk.
func NewSQLiteSecretStore(db *DB, sealer crypto.Sealer, log *logger.Logger) SecretStore {
	return &sqliteSecretStore{
		db:     db,
		sealer: sealer,
		key:    AuthTokenKey,
		logger: log,
	}
}

func (s *sqliteSecretStore) Get(ctx context.Context) (string, bool, error) {
	query, args, err := buildGetSecretQuery(s.key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Get").Msg("error building query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sealed string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Get").Msg("error reading secret")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	token, err := s.sealer.Open(sealed)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Get").Msg("stored secret cannot be opened")
		return "", false, fmt.Errorf("%w: %w", ErrSecretUnreadable, err)
	}

	return token, true, nil
}

func (s *sqliteSecretStore) Set(ctx context.Context, token string) error {
	sealed, err := s.sealer.Seal(token)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Set").Msg("error sealing secret")
		return fmt.Errorf("error sealing secret: %w", err)
	}

	query, args, err := buildSetSecretQuery(s.key, sealed)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Set").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Set").Msg("error writing secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSecretStore) Remove(ctx context.Context) error {
	query, args, err := buildRemoveSecretQuery(s.key)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Remove").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteSecretStore.Remove").Msg("error deleting secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
