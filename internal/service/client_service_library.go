// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// maxConcurrentItemLoads caps the number of in-flight GetListItems calls.
const maxConcurrentItemLoads = 4

// FindLibrary returns the first list titled exactly "Library".
//
// A user-created list with that title is indistinguishable from the default
// one; the first match wins.
func FindLibrary(lists []models.BookList) (models.BookList, bool) {
	for _, l := range lists {
		if l.IsLibrary() {
			return l, true
		}
	}
	return models.BookList{}, false
}

// SplitLibrary separates the Library list from the user-facing lists. The
// rest are ordered newest first; lists created on the same day keep their
// relative order.
func SplitLibrary(lists []models.BookList) (library *models.BookList, rest []models.BookList) {
	rest = make([]models.BookList, 0, len(lists))
	for _, l := range lists {
		if l.IsLibrary() {
			if library == nil {
				lib := l
				library = &lib
			}
			continue
		}
		rest = append(rest, l)
	}

	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].CreationDate.After(rest[j].CreationDate.Time)
	})
	return library, rest
}

type clientLibraryService struct {
	session  ClientSessionService
	listsAPI adapter.ListsAPI
	logger   *logger.Logger
	now      func() time.Time
}

// NewClientLibraryService builds the library helpers on top of the session's
// current token.
func NewClientLibraryService(session ClientSessionService, listsAPI adapter.ListsAPI, log *logger.Logger) ClientLibraryService {
	return &clientLibraryService{
		session:  session,
		listsAPI: listsAPI,
		logger:   log,
		now:      time.Now,
	}
}

func (l *clientLibraryService) token() (string, error) {
	token := l.session.Token()
	if token == "" {
		return "", ErrNotAuthenticated
	}
	return token, nil
}

// MyLists implements [ClientLibraryService].
func (l *clientLibraryService) MyLists(ctx context.Context) ([]models.BookList, error) {
	token, err := l.token()
	if err != nil {
		return nil, err
	}

	lists, err := l.listsAPI.GetMyLists(ctx, token)
	if err != nil {
		return nil, err
	}

	_, rest := SplitLibrary(lists)
	return rest, nil
}

// LoadItems implements [ClientLibraryService].
func (l *clientLibraryService) LoadItems(ctx context.Context, listIDs []int64) (map[int64][]models.ListItem, map[int64]error) {
	items := make(map[int64][]models.ListItem, len(listIDs))
	failed := make(map[int64]error)

	token, err := l.token()
	if err != nil {
		for _, id := range listIDs {
			failed[id] = err
		}
		return items, failed
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(maxConcurrentItemLoads)

	for _, id := range listIDs {
		g.Go(func() error {
			got, err := l.listsAPI.GetListItems(ctx, token, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[id] = err
				return nil
			}
			items[id] = got
			return nil
		})
	}
	_ = g.Wait()

	for id, err := range failed {
		l.logger.Warn().Err(err).Int64("list_id", id).Str("func", "clientLibraryService.LoadItems").Msg("list items failed to load")
	}
	return items, failed
}

// library finds the Library list and its items.
func (l *clientLibraryService) library(ctx context.Context, token string) (models.BookList, []models.ListItem, error) {
	lists, err := l.listsAPI.GetMyLists(ctx, token)
	if err != nil {
		return models.BookList{}, nil, err
	}

	lib, ok := FindLibrary(lists)
	if !ok {
		return models.BookList{}, nil, ErrLibraryNotFound
	}

	items, err := l.listsAPI.GetListItems(ctx, token, lib.ListID)
	if err != nil {
		return models.BookList{}, nil, err
	}
	return lib, items, nil
}

func findBook(items []models.ListItem, bookID string) *models.ListItem {
	want := models.WorkID(bookID)
	for i := range items {
		if models.WorkID(items[i].BookID) == want {
			it := items[i]
			return &it
		}
	}
	return nil
}

// InLibrary implements [ClientLibraryService].
func (l *clientLibraryService) InLibrary(ctx context.Context, bookID string) (*models.ListItem, error) {
	token, err := l.token()
	if err != nil {
		return nil, err
	}

	_, items, err := l.library(ctx, token)
	if err != nil {
		return nil, err
	}
	return findBook(items, bookID), nil
}

// ToggleInLibrary implements [ClientLibraryService]. An item that is already
// gone when removed counts as removed.
func (l *clientLibraryService) ToggleInLibrary(ctx context.Context, book models.BookRef) (bool, error) {
	token, err := l.token()
	if err != nil {
		return false, err
	}

	lib, items, err := l.library(ctx, token)
	if err != nil {
		return false, err
	}

	if existing := findBook(items, book.BookID); existing != nil {
		err = l.listsAPI.RemoveFromList(ctx, token, existing.ListItemID)
		if apiErr, ok := adapter.AsAPIError(err); ok && apiErr.IsNotFound() {
			l.logger.Debug().Int64("list_item_id", existing.ListItemID).Str("func", "clientLibraryService.ToggleInLibrary").Msg("item already removed")
			err = nil
		}
		if err != nil {
			return true, err
		}
		return false, nil
	}

	_, err = l.listsAPI.AddToList(ctx, token, models.AddListItemRequest{
		ListID:        lib.ListID,
		BookID:        book.BookID,
		Title:         book.Title,
		Author:        book.Author,
		CoverImageURL: book.CoverImageURL,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Refresh implements [ClientLibraryService]. Only the list fetch can fail
// the whole refresh; item failures are reported per list in the snapshot.
func (l *clientLibraryService) Refresh(ctx context.Context) (models.LibrarySnapshot, error) {
	token, err := l.token()
	if err != nil {
		return models.LibrarySnapshot{}, err
	}

	lists, err := l.listsAPI.GetMyLists(ctx, token)
	if err != nil {
		return models.LibrarySnapshot{}, fmt.Errorf("refresh lists: %w", err)
	}

	library, rest := SplitLibrary(lists)

	ids := make([]int64, 0, len(lists))
	if library != nil {
		ids = append(ids, library.ListID)
	}
	for _, list := range rest {
		ids = append(ids, list.ListID)
	}

	items, failed := l.LoadItems(ctx, ids)

	return models.LibrarySnapshot{
		Library:   library,
		Lists:     rest,
		Items:     items,
		Failed:    failed,
		FetchedAt: l.now(),
	}, nil
}
