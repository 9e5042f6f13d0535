// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON keys and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		SecretKey string `json:"secret_key"`
		LogFile   string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		BooksAddress   string   `json:"books_address"`
		RequestTimeout Duration `json:"request_timeout"`
		BooksRPS       float64  `json:"books_rps"`
	} `json:"adapter,omitempty"`

	Storage struct {
		SecretBackend string `json:"secret_backend"`
		DB            struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		FilePath string `json:"file_path"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey: jsonCfg.App.SecretKey,
			LogFile:   jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			BooksAddress:   jsonCfg.Adapter.BooksAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			BooksRPS:       jsonCfg.Adapter.BooksRPS,
		},
		Storage: Storage{
			SecretBackend: jsonCfg.Storage.SecretBackend,
			DB:            DB{DSN: jsonCfg.Storage.DB.DSN},
			FilePath:      jsonCfg.Storage.FilePath,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "8s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
