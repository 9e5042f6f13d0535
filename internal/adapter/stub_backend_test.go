// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/validators"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// stubBackend is an in-memory stand-in for the Noveltea REST backend.
type stubBackend struct {
	mu        sync.Mutex
	passwords map[string]string // email -> password
	users     map[string]models.UserProfile
	lists     map[int64]models.BookList
	items     map[int64]models.ListItem
	nextID    int64

	hits atomic.Int64
}

func newStubBackend(t *testing.T) (*stubBackend, *httptest.Server) {
	t.Helper()

	b := &stubBackend{
		passwords: map[string]string{},
		users:     map[string]models.UserProfile{},
		lists:     map[int64]models.BookList{},
		items:     map[int64]models.ListItem{},
		nextID:    1,
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b.hits.Add(1)
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/auth/register", b.register)
	r.Post("/auth/login", b.login)

	r.Group(func(r chi.Router) {
		r.Use(b.requireAuth)

		r.Get("/auth/me", b.me)
		r.Get("/lists/me", b.myLists)
		r.Post("/lists", b.createList)
		r.Get("/lists/{id}", b.getList)
		r.Put("/lists/{id}", b.updateList)
		r.Delete("/lists/{id}", b.deleteList)
		r.Get("/list-items/list/{id}", b.listItems)
		r.Post("/list-items", b.addItem)
		r.Delete("/list-items/{id}", b.removeItem)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *stubBackend) addUser(username, email, password string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.passwords[email] = password
	b.users[email] = models.UserProfile{
		UserID:   int64(len(b.users) + 1),
		Username: username,
		Email:    email,
		Role:     "USER",
		JoinDate: models.NewDate(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"status":    status,
		"error":     http.StatusText(status),
		"message":   message,
		"timestamp": "2026-01-01T00:00:00",
	})
}

func (b *stubBackend) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer tok-")
		b.mu.Lock()
		_, known := b.users[email]
		b.mu.Unlock()
		if !ok || !known {
			writeProblem(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		r.Header.Set("X-Test-Email", email)
		next.ServeHTTP(w, r)
	})
}

func (b *stubBackend) authResponse(email string) models.AuthResponse {
	u := b.users[email]
	return models.AuthResponse{
		AccessToken: "tok-" + email,
		User:        models.UserSummary{UserID: u.UserID, Username: u.Username, Email: u.Email},
	}
}

func (b *stubBackend) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad body")
		return
	}
	b.mu.Lock()
	_, exists := b.users[req.Email]
	b.mu.Unlock()
	if exists {
		writeProblem(w, http.StatusConflict, "Email already registered")
		return
	}
	b.addUser(req.Username, req.Email, req.Password)

	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusCreated, b.authResponse(req.Email))
}

func (b *stubBackend) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if pw, ok := b.passwords[req.Email]; !ok || pw != req.Password {
		writeProblem(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	writeJSON(w, http.StatusOK, b.authResponse(req.Email))
}

func (b *stubBackend) me(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	writeJSON(w, http.StatusOK, b.users[r.Header.Get("X-Test-Email")])
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func (b *stubBackend) myLists(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	me := b.users[r.Header.Get("X-Test-Email")]
	out := make([]models.BookList, 0)
	for _, l := range b.lists {
		if l.CreatorID == me.UserID {
			out = append(out, l)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *stubBackend) createList(w http.ResponseWriter, r *http.Request) {
	var req models.ListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	me := b.users[r.Header.Get("X-Test-Email")]
	l := models.BookList{
		ListID:          b.nextID,
		CreatorID:       me.UserID,
		CreatorUsername: me.Username,
		Title:           req.Title,
		Description:     req.Description,
		Visibility:      req.Visibility,
		CreationDate:    models.NewDate(time.Now()),
	}
	b.nextID++
	b.lists[l.ListID] = l
	writeJSON(w, http.StatusCreated, l)
}

func (b *stubBackend) getList(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.lists[pathID(r)]
	if !ok {
		writeProblem(w, http.StatusNotFound, "List not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (b *stubBackend) updateList(w http.ResponseWriter, r *http.Request) {
	var req models.ListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.lists[pathID(r)]
	if !ok {
		writeProblem(w, http.StatusNotFound, "List not found")
		return
	}
	l.Title, l.Description, l.Visibility = req.Title, req.Description, req.Visibility
	b.lists[l.ListID] = l
	writeJSON(w, http.StatusOK, l)
}

func (b *stubBackend) deleteList(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r)
	if _, ok := b.lists[id]; !ok {
		writeProblem(w, http.StatusNotFound, "List not found")
		return
	}
	delete(b.lists, id)
	w.WriteHeader(http.StatusNoContent)
}

func (b *stubBackend) listItems(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	listID := pathID(r)
	out := make([]models.ListItem, 0)
	for _, it := range b.items {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *stubBackend) addItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddListItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	l, ok := b.lists[req.ListID]
	if !ok {
		writeProblem(w, http.StatusNotFound, "List not found")
		return
	}
	it := models.ListItem{
		ListItemID:    b.nextID,
		ListID:        req.ListID,
		BookID:        req.BookID,
		BookTitle:     req.Title,
		BookAuthor:    req.Author,
		CoverImageURL: req.CoverImageURL,
		SortOrder:     l.BookCount,
		AddedDate:     models.NewDate(time.Now()),
	}
	b.nextID++
	b.items[it.ListItemID] = it
	l.BookCount++
	b.lists[l.ListID] = l
	writeJSON(w, http.StatusCreated, it)
}

func (b *stubBackend) removeItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := pathID(r)
	it, ok := b.items[id]
	if !ok {
		writeProblem(w, http.StatusNotFound, "List item not found")
		return
	}
	delete(b.items, id)
	if l, ok := b.lists[it.ListID]; ok {
		l.BookCount--
		b.lists[l.ListID] = l
	}
	w.WriteHeader(http.StatusNoContent)
}

// newTestExecutor points an Executor at serverURL.
func newTestExecutor(t *testing.T, serverURL string, timeout time.Duration) *Executor {
	t.Helper()
	exec, err := NewExecutor(serverURL, timeout, logger.Nop())
	require.NoError(t, err)
	return exec
}

func newTestAdapters(t *testing.T, serverURL string) (AuthAPI, ListsAPI, ReviewsAPI) {
	t.Helper()
	exec := newTestExecutor(t, serverURL, time.Second)
	v := validators.NewValidator()
	return NewHTTPAuthAPI(exec, v), NewHTTPListsAPI(exec, v), NewHTTPReviewsAPI(exec, v)
}
