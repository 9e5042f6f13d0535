// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses client configuration flags from args on a dedicated
// flag set, so repeated calls never collide with the global one.
//
// Flags:
//
//	-a backend base URL (e.g. http://localhost:8080)
//	-books-address book-metadata API base URL
//	-request-timeout per-request deadline (e.g. "8s")
//	-books-rps request rate against the book-metadata API
//	-secret-backend secret store backend: sqlite or file
//	-d SQLite DSN
//	-token-file token file path for the file backend
//	-secret-key passphrase used to seal the stored token
//	-log-file log file path
//	-refresh-interval library refresh period, 0 disables it
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("noveltea", flag.ContinueOnError)

	var (
		httpAddress     string
		booksAddress    string
		requestTimeout  time.Duration
		booksRPS        float64
		secretBackend   string
		databaseDSN     string
		tokenFile       string
		secretKey       string
		logFile         string
		refreshInterval time.Duration
		jsonConfigPath  string
	)

	fs.StringVar(&httpAddress, "a", "", "Backend base URL")
	fs.StringVar(&booksAddress, "books-address", "", "Book-metadata API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 8s)")
	fs.Float64Var(&booksRPS, "books-rps", 0, "Book-metadata API requests per second")
	fs.StringVar(&secretBackend, "secret-backend", "", "Secret store backend: sqlite or file")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&tokenFile, "token-file", "", "Token file path")
	fs.StringVar(&secretKey, "secret-key", "", "Passphrase used to seal the stored token")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Library refresh interval (0 disables)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
			LogFile:   logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			BooksAddress:   booksAddress,
			RequestTimeout: requestTimeout,
			BooksRPS:       booksRPS,
		},
		Storage: Storage{
			SecretBackend: secretBackend,
			DB:            DB{DSN: databaseDSN},
			FilePath:      tokenFile,
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
