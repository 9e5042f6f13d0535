// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"fmt"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/config"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
)

// Adapters groups every remote API the client uses.
type Adapters struct {
	Auth    AuthAPI
	Lists   ListsAPI
	Reviews ReviewsAPI
	Books   BooksAPI
}

// NewAdapters builds one [Executor] per remote service and wires the domain
// modules on top of them.
func NewAdapters(cfg config.Adapter, validator validators.Validator, log *logger.Logger) (*Adapters, error) {
	backend, err := NewExecutor(cfg.HTTPAddress, cfg.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("backend executor: %w", err)
	}

	books, err := NewExecutor(cfg.BooksAddress, cfg.RequestTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("books executor: %w", err)
	}

	return &Adapters{
		Auth:    NewHTTPAuthAPI(backend, validator),
		Lists:   NewHTTPListsAPI(backend, validator),
		Reviews: NewHTTPReviewsAPI(backend, validator),
		Books:   NewHTTPBooksAPI(books, cfg.BooksRPS),
	}, nil
}
