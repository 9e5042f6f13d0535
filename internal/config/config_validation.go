// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// An empty config (no layers at all) is accepted so the builder can be
// exercised in isolation; every populated config must name both remote
// services, carry a positive timeout and select a usable secret backend.
func (cfg *StructuredConfig) validate() error {
	if *cfg == (StructuredConfig{}) {
		return nil
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" ||
		strings.TrimSpace(cfg.Adapter.BooksAddress) == "" ||
		cfg.Adapter.RequestTimeout <= 0 ||
		cfg.Adapter.BooksRPS < 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Storage.SecretBackend {
	case SecretBackendSQLite:
		if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
			return ErrInvalidStorageConfigs
		}
	case SecretBackendFile:
		if strings.TrimSpace(cfg.Storage.FilePath) == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
