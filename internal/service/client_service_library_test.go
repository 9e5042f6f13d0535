// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/mock"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

func newTestLibrarySvc(t *testing.T, ctrl *gomock.Controller, token string) (*clientLibraryService, *mock.MockListsAPI) {
	t.Helper()
	mockSession := mock.NewMockClientSessionService(ctrl)
	mockSession.EXPECT().Token().Return(token).AnyTimes()
	mockLists := mock.NewMockListsAPI(ctrl)

	svc := NewClientLibraryService(mockSession, mockLists, logger.Nop()).(*clientLibraryService)
	svc.now = func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }
	return svc, mockLists
}

func day(y int, m time.Month, d int) models.Date {
	return models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

var sampleLists = []models.BookList{
	{ListID: 1, Title: "Old favourites", CreationDate: day(2025, 1, 1)},
	{ListID: 2, Title: models.LibraryListTitle, CreationDate: day(2025, 6, 1), BookCount: 1},
	{ListID: 3, Title: "To read", CreationDate: day(2026, 2, 1)},
}

// ── FindLibrary / SplitLibrary ───────────────────────────────────────────────

func TestFindLibrary(t *testing.T) {
	lib, ok := FindLibrary(sampleLists)
	require.True(t, ok)
	assert.Equal(t, int64(2), lib.ListID)

	_, ok = FindLibrary([]models.BookList{{Title: "library"}, {Title: "Library "}})
	assert.False(t, ok, "match is exact")

	_, ok = FindLibrary(nil)
	assert.False(t, ok)
}

func TestSplitLibrary(t *testing.T) {
	lib, rest := SplitLibrary(sampleLists)

	require.NotNil(t, lib)
	assert.Equal(t, int64(2), lib.ListID)
	require.Len(t, rest, 2)
	assert.Equal(t, int64(3), rest[0].ListID, "newest first")
	assert.Equal(t, int64(1), rest[1].ListID)
}

func TestSplitLibrary_DuplicateTitleCollision(t *testing.T) {
	lists := []models.BookList{
		{ListID: 10, Title: models.LibraryListTitle},
		{ListID: 11, Title: models.LibraryListTitle},
	}

	lib, rest := SplitLibrary(lists)
	require.NotNil(t, lib)
	assert.Equal(t, int64(10), lib.ListID)
	assert.Empty(t, rest)
}

// ── not authenticated ────────────────────────────────────────────────────────

func TestClientLibraryService_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestLibrarySvc(t, ctrl, "")
	ctx := context.Background()

	_, err := svc.MyLists(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.ToggleInLibrary(ctx, models.BookRef{BookID: "OL1W"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Refresh(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	items, failed := svc.LoadItems(ctx, []int64{1, 2})
	assert.Empty(t, items)
	assert.ErrorIs(t, failed[1], ErrNotAuthenticated)
	assert.ErrorIs(t, failed[2], ErrNotAuthenticated)
}

// ── MyLists ──────────────────────────────────────────────────────────────────

func TestClientLibraryService_MyLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil)

	got, err := svc.MyLists(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, l := range got {
		assert.False(t, l.IsLibrary())
	}
}

// ── LoadItems ────────────────────────────────────────────────────────────────

func TestClientLibraryService_LoadItems_EachResultUnderItsOwnKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	// list 1 answers last, list 2 fails, list 3 answers first
	var release sync.WaitGroup
	release.Add(1)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(1)).DoAndReturn(
		func(context.Context, string, int64) ([]models.ListItem, error) {
			release.Wait()
			return []models.ListItem{{ListItemID: 100, ListID: 1}}, nil
		})
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).
		Return(nil, &adapter.APIError{Status: http.StatusForbidden, Message: "Forbidden"})
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(3)).DoAndReturn(
		func(context.Context, string, int64) ([]models.ListItem, error) {
			defer release.Done()
			return []models.ListItem{{ListItemID: 300, ListID: 3}, {ListItemID: 301, ListID: 3}}, nil
		})

	items, failed := svc.LoadItems(ctx, []int64{1, 2, 3})

	require.Len(t, items, 2)
	assert.Equal(t, int64(100), items[1][0].ListItemID)
	assert.Len(t, items[3], 2)
	_, hasTwo := items[2]
	assert.False(t, hasTwo)

	require.Len(t, failed, 1)
	apiErr, ok := adapter.AsAPIError(failed[2])
	require.True(t, ok)
	assert.True(t, apiErr.IsForbidden())
}

// ── ToggleInLibrary ──────────────────────────────────────────────────────────

func TestClientLibraryService_ToggleInLibrary_Adds(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()
	cover := "https://covers.openlibrary.org/b/id/1-M.jpg"

	gomock.InOrder(
		mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil),
		mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).Return([]models.ListItem{}, nil),
		mockLists.EXPECT().AddToList(ctx, "tok", models.AddListItemRequest{
			ListID:        2,
			BookID:        "/works/OL1W",
			Title:         "Dune",
			Author:        "Frank Herbert",
			CoverImageURL: &cover,
		}).Return(models.ListItem{ListItemID: 9, ListID: 2, BookID: "/works/OL1W"}, nil),
	)

	in, err := svc.ToggleInLibrary(ctx, models.BookRef{
		BookID:        "/works/OL1W",
		Title:         "Dune",
		Author:        "Frank Herbert",
		CoverImageURL: &cover,
	})
	require.NoError(t, err)
	assert.True(t, in)
}

func TestClientLibraryService_ToggleInLibrary_RemovesMatchingEitherKeyForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).
		Return([]models.ListItem{{ListItemID: 9, ListID: 2, BookID: "/works/OL1W"}}, nil)
	mockLists.EXPECT().RemoveFromList(ctx, "tok", int64(9)).Return(nil)

	in, err := svc.ToggleInLibrary(ctx, models.BookRef{BookID: "OL1W"})
	require.NoError(t, err)
	assert.False(t, in)
}

func TestClientLibraryService_ToggleInLibrary_AlreadyRemoved(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).
		Return([]models.ListItem{{ListItemID: 9, BookID: "OL1W"}}, nil)
	mockLists.EXPECT().RemoveFromList(ctx, "tok", int64(9)).
		Return(&adapter.APIError{Status: http.StatusNotFound, Message: "List item not found"})

	in, err := svc.ToggleInLibrary(ctx, models.BookRef{BookID: "OL1W"})
	require.NoError(t, err)
	assert.False(t, in)
}

func TestClientLibraryService_ToggleInLibrary_RemoveFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).
		Return([]models.ListItem{{ListItemID: 9, BookID: "OL1W"}}, nil)
	mockLists.EXPECT().RemoveFromList(ctx, "tok", int64(9)).Return(adapter.ErrTimeout)

	in, err := svc.ToggleInLibrary(ctx, models.BookRef{BookID: "OL1W"})
	assert.ErrorIs(t, err, adapter.ErrTimeout)
	assert.True(t, in, "membership unchanged on failure")
}

func TestClientLibraryService_ToggleInLibrary_NoLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists[:1], nil)

	_, err := svc.ToggleInLibrary(ctx, models.BookRef{BookID: "OL1W"})
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestClientLibraryService_InLibrary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil).Times(2)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).
		Return([]models.ListItem{{ListItemID: 9, BookID: "OL1W"}}, nil).Times(2)

	item, err := svc.InLibrary(ctx, "/works/OL1W")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, int64(9), item.ListItemID)

	item, err = svc.InLibrary(ctx, "OL2W")
	require.NoError(t, err)
	assert.Nil(t, item)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestClientLibraryService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(sampleLists, nil)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(1)).Return([]models.ListItem{}, nil)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(2)).Return([]models.ListItem{{ListItemID: 5, ListID: 2}}, nil)
	mockLists.EXPECT().GetListItems(ctx, "tok", int64(3)).Return(nil, adapter.ErrNetworkUnreachable)

	snap, err := svc.Refresh(ctx)
	require.NoError(t, err)

	require.NotNil(t, snap.Library)
	assert.Equal(t, int64(2), snap.Library.ListID)
	assert.Len(t, snap.LibraryItems(), 1)
	require.Len(t, snap.Lists, 2)
	assert.Equal(t, int64(3), snap.Lists[0].ListID)
	assert.ErrorIs(t, snap.Failed[3], adapter.ErrNetworkUnreachable)
	assert.Equal(t, time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC), snap.FetchedAt)
}

func TestClientLibraryService_Refresh_ListsFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockLists := newTestLibrarySvc(t, ctrl, "tok")
	ctx := context.Background()

	boom := errors.New("boom")
	mockLists.EXPECT().GetMyLists(ctx, "tok").Return(nil, boom)

	_, err := svc.Refresh(ctx)
	assert.ErrorIs(t, err, boom)
}
