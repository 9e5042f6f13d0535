// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

type httpListsAPI struct {
	exec      *Executor
	validator validators.Validator
}

// NewHTTPListsAPI constructs the REST implementation of [ListsAPI].
func NewHTTPListsAPI(exec *Executor, validator validators.Validator) ListsAPI {
	return &httpListsAPI{exec: exec, validator: validator}
}

func (l *httpListsAPI) GetMyLists(ctx context.Context, token string) ([]models.BookList, error) {
	lists := make([]models.BookList, 0)
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodGet,
		Path:         "/lists/me",
		Token:        token,
		RequireToken: true,
	}, &lists)
	if err != nil {
		return nil, fmt.Errorf("get my lists request: %w", err)
	}
	return lists, nil
}

func (l *httpListsAPI) GetListByID(ctx context.Context, token string, listID int64) (models.BookList, error) {
	var list models.BookList
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodGet,
		Path:         "/lists/" + strconv.FormatInt(listID, 10),
		Token:        token,
		RequireToken: true,
	}, &list)
	if err != nil {
		return models.BookList{}, fmt.Errorf("get list %d request: %w", listID, err)
	}
	return list, nil
}

func (l *httpListsAPI) GetListsByUser(ctx context.Context, token string, userID int64) ([]models.BookList, error) {
	lists := make([]models.BookList, 0)
	err := l.exec.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/lists/user/" + strconv.FormatInt(userID, 10),
		Token:  token,
	}, &lists)
	if err != nil {
		return nil, fmt.Errorf("get lists of user %d request: %w", userID, err)
	}
	return lists, nil
}

func (l *httpListsAPI) SearchPublicLists(ctx context.Context, token, title string) ([]models.BookList, error) {
	lists := make([]models.BookList, 0)
	err := l.exec.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/lists/search",
		Query:  url.Values{"title": {title}},
		Token:  token,
	}, &lists)
	if err != nil {
		return nil, fmt.Errorf("search lists request: %w", err)
	}
	return lists, nil
}

func (l *httpListsAPI) GetListItems(ctx context.Context, token string, listID int64) ([]models.ListItem, error) {
	items := make([]models.ListItem, 0)
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodGet,
		Path:         "/list-items/list/" + strconv.FormatInt(listID, 10),
		Token:        token,
		RequireToken: true,
	}, &items)
	if err != nil {
		return nil, fmt.Errorf("get items of list %d request: %w", listID, err)
	}
	return items, nil
}

// AddToList implements [ListsAPI]. The payload is validated before any
// network call.
func (l *httpListsAPI) AddToList(ctx context.Context, token string, req models.AddListItemRequest) (models.ListItem, error) {
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.ListItem{}, fmt.Errorf("add to list: %w", err)
	}

	var item models.ListItem
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodPost,
		Path:         "/list-items",
		Body:         req,
		Token:        token,
		RequireToken: true,
	}, &item)
	if err != nil {
		return models.ListItem{}, fmt.Errorf("add to list request: %w", err)
	}
	return item, nil
}

// RemoveFromList implements [ListsAPI]. Removing an item that is already
// gone fails with a 404 [*APIError]; callers may treat that as done.
func (l *httpListsAPI) RemoveFromList(ctx context.Context, token string, listItemID int64) error {
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodDelete,
		Path:         "/list-items/" + strconv.FormatInt(listItemID, 10),
		Token:        token,
		RequireToken: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("remove list item %d request: %w", listItemID, err)
	}
	return nil
}

func (l *httpListsAPI) ReorderListItem(ctx context.Context, token string, listItemID int64, newSortOrder int) error {
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodPatch,
		Path:         "/list-items/" + strconv.FormatInt(listItemID, 10) + "/reorder",
		Query:        url.Values{"newSortOrder": {strconv.Itoa(newSortOrder)}},
		Token:        token,
		RequireToken: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("reorder list item %d request: %w", listItemID, err)
	}
	return nil
}

func (l *httpListsAPI) CreateList(ctx context.Context, token string, req models.ListRequest) (models.BookList, error) {
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.BookList{}, fmt.Errorf("create list: %w", err)
	}

	var list models.BookList
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodPost,
		Path:         "/lists",
		Body:         req,
		Token:        token,
		RequireToken: true,
	}, &list)
	if err != nil {
		return models.BookList{}, fmt.Errorf("create list request: %w", err)
	}
	return list, nil
}

func (l *httpListsAPI) UpdateList(ctx context.Context, token string, listID int64, req models.ListRequest) (models.BookList, error) {
	if err := l.validator.Validate(ctx, req); err != nil {
		return models.BookList{}, fmt.Errorf("update list: %w", err)
	}

	var list models.BookList
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodPut,
		Path:         "/lists/" + strconv.FormatInt(listID, 10),
		Body:         req,
		Token:        token,
		RequireToken: true,
	}, &list)
	if err != nil {
		return models.BookList{}, fmt.Errorf("update list %d request: %w", listID, err)
	}
	return list, nil
}

func (l *httpListsAPI) DeleteList(ctx context.Context, token string, listID int64) error {
	err := l.exec.Do(ctx, Request{
		Method:       http.MethodDelete,
		Path:         "/lists/" + strconv.FormatInt(listID, 10),
		Token:        token,
		RequireToken: true,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete list %d request: %w", listID, err)
	}
	return nil
}
