// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// Noveltea client. It aggregates all sub-configurations and is populated by
// merging built-in defaults with values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the key used to seal the
	// persisted credential and the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds the addresses and timeouts of the remote services the
	// client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration of the secret store that keeps the bearer
	// token between runs.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for opt-in background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey is the passphrase the persisted credential is sealed with.
	// When empty the token is stored unsealed.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// LogFile is the path of the JSON log file. The terminal UI owns stdout,
	// so logs never go there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the remote endpoints used by the client transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the Noveltea REST backend
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BooksAddress is the base URL of the book-metadata API
	// (e.g. "https://openlibrary.org").
	// Env: ADAPTER_BOOKS_ADDRESS
	BooksAddress string `env:"BOOKS_ADDRESS"`

	// RequestTimeout is the fixed deadline of a single outbound request
	// (e.g. "8s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BooksRPS is the request rate allowed against the book-metadata API.
	// Env: ADAPTER_BOOKS_RPS
	BooksRPS float64 `env:"BOOKS_RPS"`
}

// Storage groups the configuration of the secret store backends.
type Storage struct {
	// SecretBackend selects the secret store implementation: "sqlite" or
	// "file".
	// Env: STORAGE_SECRET_BACKEND
	SecretBackend string `env:"SECRET_BACKEND"`

	// DB holds the SQLite database settings used by the "sqlite" backend.
	DB DB `envPrefix:"DB_"`

	// FilePath is the token file used by the "file" backend.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "noveltea.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is the period of the opt-in library refresh job.
	// Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Supported values of [Storage.SecretBackend].
const (
	SecretBackendSQLite = "sqlite"
	SecretBackendFile   = "file"
)

// Built-in defaults applied before any other source.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultBooksAddress   = "https://openlibrary.org"
	DefaultRequestTimeout = 8000 * time.Millisecond
	DefaultBooksRPS       = 1.0
	DefaultDSN            = "noveltea.db"
	DefaultTokenFile      = "noveltea.token"
	DefaultLogFile        = "noveltea.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogFile: DefaultLogFile},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			BooksAddress:   DefaultBooksAddress,
			RequestTimeout: DefaultRequestTimeout,
			BooksRPS:       DefaultBooksRPS,
		},
		Storage: Storage{
			SecretBackend: SecretBackendSQLite,
			DB:            DB{DSN: DefaultDSN},
			FilePath:      DefaultTokenFile,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
