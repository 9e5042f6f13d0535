// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package service

import (
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/store"
)

// ClientServices groups the services the front end talks to. Reviews and
// Books carry no client-side state, so the book details view calls the
// adapters directly.
type ClientServices struct {
	SessionService ClientSessionService
	LibraryService ClientLibraryService
	Lists          adapter.ListsAPI
	Reviews        adapter.ReviewsAPI
	Books          adapter.BooksAPI
}

func NewClientServices(storages *store.ClientStorages, adapters *adapter.Adapters, log *logger.Logger) *ClientServices {
	sessionSvc := NewClientSessionService(adapters.Auth, storages.SecretStore, log)

	return &ClientServices{
		SessionService: sessionSvc,
		LibraryService: NewClientLibraryService(sessionSvc, adapters.Lists, log),
		Lists:          adapters.Lists,
		Reviews:        adapters.Reviews,
		Books:          adapters.Books,
	}
}
