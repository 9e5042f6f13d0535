// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

const statusTTL = 3 * time.Second

type mainView int

const (
	viewLists mainView = iota
	viewItems
	viewBook
)

// mainLoopModel is the signed-in screen: the Library and the user's lists,
// the items of one list at a time, and the details of one book.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	copy     func(string) error

	snapshot models.LibrarySnapshot
	loaded   bool

	view       mainView
	idx        int
	openListID int64
	itemIdx    int
	book       *bookDetail
	myReviews  *int64

	loading bool
	spinner spinner.Model
	status  string
	overlay *errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, copyFn func(string) error) mainLoopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		copy:     copyFn,
		loading:  true,
		spinner:  sp,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh(), m.cmdReviewCount())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.overlay != nil {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.overlay = nil
			}
			return m, nil
		}
		return m.updateKeys(msg)
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case snapshotMsg:
		return m.applySnapshot(msg)
	case toggledMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		refresh := m.startRefresh()
		if msg.inLibrary {
			return m.withStatus(fmt.Sprintf("Added %q to Library", msg.title), refresh)
		}
		return m.withStatus(fmt.Sprintf("Removed %q from Library", msg.title), refresh)
	case removedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		refresh := m.startRefresh()
		return m.withStatus("Removed from list", refresh)
	case copiedMsg:
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		return m.withStatus("Copied "+msg.value, nil)
	case bookMsg:
		if m.book == nil || m.book.workID != msg.workID {
			return m, nil
		}
		m.book = &bookDetail{
			item:       m.book.item,
			workID:     msg.workID,
			work:       msg.work,
			workErr:    msg.workErr,
			reviews:    msg.reviews,
			reviewsErr: msg.reviewsErr,
		}
		return m, nil
	case reviewCountMsg:
		if msg.err == nil {
			n := msg.count
			m.myReviews = &n
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.services.SessionService.Logout(m.ctx)
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.refresh):
		refresh := m.startRefresh()
		return m, refresh
	case key.Matches(msg, keys.up):
		m.move(-1)
	case key.Matches(msg, keys.down):
		m.move(1)
	}

	if m.view == viewBook {
		if key.Matches(msg, keys.esc) {
			m.view = viewItems
			m.book = nil
		}
		return m, nil
	}

	if m.view == viewLists {
		if key.Matches(msg, keys.enter) {
			lists := m.lists()
			if m.idx < len(lists) {
				m.openListID = lists[m.idx].ListID
				m.itemIdx = 0
				m.view = viewItems
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.view = viewLists
	case key.Matches(msg, keys.info):
		if item, ok := m.currentItem(); ok {
			workID := models.WorkID(item.BookID)
			m.book = &bookDetail{item: item, workID: workID, loading: true}
			m.view = viewBook
			return m, m.cmdLoadBook(workID)
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.currentItem(); ok {
			return m, m.cmdCopy(models.WorkID(item.BookID))
		}
	case key.Matches(msg, keys.toggle):
		if item, ok := m.currentItem(); ok {
			return m, m.cmdToggle(models.BookRef{
				BookID:        item.BookID,
				Title:         item.BookTitle,
				Author:        item.BookAuthor,
				CoverImageURL: item.CoverImageURL,
			})
		}
	case key.Matches(msg, keys.remove):
		if item, ok := m.currentItem(); ok {
			return m, m.cmdRemove(item.ListItemID)
		}
	}
	return m, nil
}

// applySnapshot keeps the current selection where possible. A background
// snapshot never raises an error overlay.
func (m mainLoopModel) applySnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	if !msg.background {
		m.loading = false
	}
	if msg.err != nil {
		if !msg.background {
			m.showError(msg.err)
		}
		return m, nil
	}

	m.snapshot = msg.snap
	m.loaded = true

	if lists := m.lists(); m.idx >= len(lists) {
		m.idx = max(len(lists)-1, 0)
	}
	if m.view != viewLists {
		if _, ok := m.openList(); !ok {
			m.view = viewLists
			m.book = nil
		} else if items := m.snapshot.Items[m.openListID]; m.itemIdx >= len(items) {
			m.itemIdx = max(len(items)-1, 0)
		}
	}
	return m, nil
}

func (m *mainLoopModel) move(delta int) {
	switch m.view {
	case viewLists:
		m.idx = clamp(m.idx+delta, len(m.lists()))
	case viewItems:
		m.itemIdx = clamp(m.itemIdx+delta, len(m.snapshot.Items[m.openListID]))
	}
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *mainLoopModel) showError(err error) {
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
}

func (m mainLoopModel) withStatus(status string, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.status = status
	expire := tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
	return m, tea.Batch(cmd, expire)
}

// lists returns the Library first, then the other lists.
func (m mainLoopModel) lists() []models.BookList {
	out := make([]models.BookList, 0, len(m.snapshot.Lists)+1)
	if m.snapshot.Library != nil {
		out = append(out, *m.snapshot.Library)
	}
	return append(out, m.snapshot.Lists...)
}

func (m mainLoopModel) openList() (models.BookList, bool) {
	for _, l := range m.lists() {
		if l.ListID == m.openListID {
			return l, true
		}
	}
	return models.BookList{}, false
}

func (m mainLoopModel) currentItem() (models.ListItem, bool) {
	items := m.snapshot.Items[m.openListID]
	if m.itemIdx < 0 || m.itemIdx >= len(items) {
		return models.ListItem{}, false
	}
	return items[m.itemIdx], true
}

func (m mainLoopModel) bookCount(l models.BookList) int {
	if items, ok := m.snapshot.Items[l.ListID]; ok {
		return len(items)
	}
	return l.BookCount
}

func (m mainLoopModel) inLibrary(bookID string) bool {
	want := models.WorkID(bookID)
	for _, it := range m.snapshot.LibraryItems() {
		if models.WorkID(it.BookID) == want {
			return true
		}
	}
	return false
}

// ── commands ──

// startRefresh is a no-op while a foreground refresh is already running.
func (m *mainLoopModel) startRefresh() tea.Cmd {
	if m.loading {
		return nil
	}
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdRefresh(), m.cmdReviewCount())
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	library := m.services.LibraryService

	return func() tea.Msg {
		snap, err := library.Refresh(ctx)
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m mainLoopModel) cmdToggle(book models.BookRef) tea.Cmd {
	ctx := m.ctx
	library := m.services.LibraryService

	return func() tea.Msg {
		inLibrary, err := library.ToggleInLibrary(ctx, book)
		return toggledMsg{title: book.Title, inLibrary: inLibrary, err: err}
	}
}

// cmdRemove treats an item that is already gone as removed.
func (m mainLoopModel) cmdRemove(listItemID int64) tea.Cmd {
	ctx := m.ctx
	session := m.services.SessionService
	lists := m.services.Lists

	return func() tea.Msg {
		token := session.Token()
		if token == "" {
			return removedMsg{listItemID: listItemID, err: service.ErrNotAuthenticated}
		}

		err := lists.RemoveFromList(ctx, token, listItemID)
		if apiErr, ok := adapter.AsAPIError(err); ok && apiErr.IsNotFound() {
			err = nil
		}
		return removedMsg{listItemID: listItemID, err: err}
	}
}

func (m mainLoopModel) cmdCopy(value string) tea.Cmd {
	copyFn := m.copy

	return func() tea.Msg {
		return copiedMsg{value: value, err: copyFn(value)}
	}
}

// ── view ──

func (m mainLoopModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var body, hotKeys, title string
	switch m.view {
	case viewBook:
		title = strings.ToUpper(m.book.item.BookTitle)
		body = m.bookView()
		hotKeys = "esc: back │ r: refresh │ l: logout"
	case viewItems:
		list, _ := m.openList()
		title = strings.ToUpper(list.Title)
		body = m.itemsView()
		hotKeys = "esc: back │ i: details │ c: copy id │ t: library │ d: remove │ r: refresh │ l: logout"
	default:
		title = "MY LISTS"
		body = m.listsView()
		hotKeys = "enter: open │ ↑/↓: move │ r: refresh │ l: logout │ q: quit"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.loading {
		b.WriteString("\n\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage(title, b.String(), hotKeys)
}

func (m mainLoopModel) header() string {
	who := "-"
	if u := m.services.SessionService.User(); u != nil {
		who = u.Username
	}

	library := "Library: -"
	if m.snapshot.Library != nil {
		n := m.bookCount(*m.snapshot.Library)
		library = fmt.Sprintf("Library: %d %s", n, plural(n, "book", "books"))
	}

	header := fmt.Sprintf("Signed in as %s │ %s", who, library)
	if m.myReviews != nil {
		n := int(*m.myReviews)
		header += fmt.Sprintf(" │ %d %s", n, plural(n, "review", "reviews"))
	}
	return header
}

func (m mainLoopModel) listsView() string {
	if !m.loaded {
		return "-"
	}

	lists := m.lists()
	if len(lists) == 0 {
		return "You have no lists yet."
	}

	var b strings.Builder
	for i, l := range lists {
		n := m.bookCount(l)
		line := fmt.Sprintf("%-32s %3d %s", fitText(l.Title, 32), n, plural(n, "book", "books"))
		if _, failed := m.snapshot.Failed[l.ListID]; failed {
			line += "  (items unavailable)"
		}

		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) itemsView() string {
	if err, failed := m.snapshot.Failed[m.openListID]; failed {
		return errorStyle.Render(humanizeError(err))
	}

	items := m.snapshot.Items[m.openListID]
	if len(items) == 0 {
		return "This list is empty."
	}

	var b strings.Builder
	for i, it := range items {
		mark := " "
		if m.inLibrary(it.BookID) {
			mark = "*"
		}
		line := fmt.Sprintf("%s %-36s %s", mark, fitText(it.BookTitle, 36), fitText(it.BookAuthor, 24))

		if i == m.itemIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if item, ok := m.currentItem(); ok {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Work:  %s\n", models.WorkID(item.BookID)))
		b.WriteString(fmt.Sprintf("Cover: %s\n", valueOrDash(item.CoverImageURL)))
		b.WriteString(fmt.Sprintf("Added: %s", item.AddedDate.Format(models.DateLayout)))
	}
	return strings.TrimRight(b.String(), "\n")
}
