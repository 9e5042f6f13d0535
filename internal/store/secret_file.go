// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/crypto"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
)

// fileSecretStore keeps the token in a single 0600 file. A missing file
// means no token.
type fileSecretStore struct {
	path   string
	sealer crypto.Sealer
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileSecretStore returns a [SecretStore] writing to path.
func NewFileSecretStore(path string, sealer crypto.Sealer, log *logger.Logger) SecretStore {
	return &fileSecretStore{
		path:   path,
		sealer: sealer,
		logger: log,
	}
}

func (f *fileSecretStore) Get(ctx context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		f.logger.Err(err).Str("func", "fileSecretStore.Get").Str("path", f.path).Msg("error reading token file")
		return "", false, fmt.Errorf("read token file: %w", err)
	}

	sealed := strings.TrimSpace(string(data))
	if sealed == "" {
		return "", false, nil
	}

	token, err := f.sealer.Open(sealed)
	if err != nil {
		f.logger.Err(err).Str("func", "fileSecretStore.Get").Msg("stored secret cannot be opened")
		return "", false, fmt.Errorf("%w: %w", ErrSecretUnreadable, err)
	}

	return token, true, nil
}

func (f *fileSecretStore) Set(ctx context.Context, token string) error {
	sealed, err := f.sealer.Seal(token)
	if err != nil {
		return fmt.Errorf("error sealing secret: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}

	// write to a sibling file and rename so a crash never leaves half a token
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sealed), 0o600); err != nil {
		f.logger.Err(err).Str("func", "fileSecretStore.Set").Str("path", tmp).Msg("error writing token file")
		return fmt.Errorf("write token file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		f.logger.Err(err).Str("func", "fileSecretStore.Set").Str("path", f.path).Msg("error replacing token file")
		return fmt.Errorf("replace token file: %w", err)
	}

	return nil
}

func (f *fileSecretStore) Remove(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		f.logger.Err(err).Str("func", "fileSecretStore.Remove").Str("path", f.path).Msg("error removing token file")
		return fmt.Errorf("remove token file: %w", err)
	}

	return nil
}
