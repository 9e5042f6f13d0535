// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/adapter"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/store"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/utils"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

type clientSessionService struct {
	authAPI adapter.AuthAPI
	secrets store.SecretStore
	logger  *logger.Logger
	now     func() time.Time

	// publishMu orders publishes so subscribers see changes in the order
	// they were applied. mu guards the fields below and is never held while
	// a subscriber runs.
	publishMu   sync.Mutex
	mu          sync.Mutex
	session     models.Session
	subscribers map[uint64]func(models.Session)
	nextSubID   uint64
}

// NewClientSessionService creates a session manager in the Restoring state.
// Call Restore once before anything reads the session.
func NewClientSessionService(authAPI adapter.AuthAPI, secrets store.SecretStore, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		authAPI:     authAPI,
		secrets:     secrets,
		logger:      log,
		now:         time.Now,
		session:     models.Session{Status: models.SessionRestoring},
		subscribers: make(map[uint64]func(models.Session)),
	}
}

// Restore implements [ClientSessionService].
func (s *clientSessionService) Restore(ctx context.Context) models.Session {
	token, ok, err := s.secrets.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Restore").Msg("stored token could not be read")
		return s.discard(ctx)
	}
	if !ok || token == "" {
		return s.publish(models.Session{Status: models.SessionAnonymous})
	}

	if err := s.checkExpiry(token); err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Restore").Msg("stored token discarded without a request")
		return s.discard(ctx)
	}

	profile, err := s.authAPI.Me(ctx, token)
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Restore").Msg("stored token was not accepted")
		return s.discard(ctx)
	}

	s.logger.Info().Int64("user_id", profile.UserID).Str("func", "clientSessionService.Restore").Msg("session restored")
	return s.publish(models.Session{
		Status: models.SessionAuthenticated,
		User:   &profile,
		Token:  token,
	})
}

// checkExpiry rejects JWTs whose exp claim has passed. Opaque tokens are
// left to the backend.
func (s *clientSessionService) checkExpiry(token string) error {
	claims, err := utils.ParseTokenClaimsUnverified(token)
	if errors.Is(err, utils.ErrNotJWT) {
		return nil
	}
	if err != nil {
		return err
	}
	if claims.Expired(s.now()) {
		return ErrTokenIsExpired
	}
	return nil
}

func (s *clientSessionService) discard(ctx context.Context) models.Session {
	store.ClearBestEffort(ctx, s.secrets, s.logger)
	return s.publish(models.Session{Status: models.SessionAnonymous})
}

// Login implements [ClientSessionService].
func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	resp, err := s.authAPI.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err = s.establish(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

// Register implements [ClientSessionService].
func (s *clientSessionService) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.authAPI.Register(ctx, username, email, password)
	if err != nil {
		return err
	}

	if err = s.establish(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// establish loads the full profile for a fresh token, persists the token and
// publishes the authenticated session, in that order.
func (s *clientSessionService) establish(ctx context.Context, token string) error {
	profile, err := s.authAPI.Me(ctx, token)
	if err != nil {
		return err
	}

	if err = s.secrets.Set(ctx, token); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.establish").Msg("failed to persist token")
		return fmt.Errorf("persist token: %w", err)
	}

	s.publish(models.Session{
		Status: models.SessionAuthenticated,
		User:   &profile,
		Token:  token,
	})

	s.logger.Info().Int64("user_id", profile.UserID).Str("func", "clientSessionService.establish").Msg("signed in")
	return nil
}

// Logout implements [ClientSessionService].
func (s *clientSessionService) Logout(ctx context.Context) {
	store.ClearBestEffort(ctx, s.secrets, s.logger)
	s.publish(models.Session{Status: models.SessionAnonymous})
	s.logger.Info().Str("func", "clientSessionService.Logout").Msg("signed out")
}

func (s *clientSessionService) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *clientSessionService) Token() string {
	if cur := s.Current(); cur.Authenticated() {
		return cur.Token
	}
	return ""
}

func (s *clientSessionService) User() *models.UserProfile {
	if cur := s.Current(); cur.Authenticated() {
		u := *cur.User
		return &u
	}
	return nil
}

// Subscribe implements [ClientSessionService]. fn runs on the goroutine that
// changed the session. Deliveries are serialized and follow the order of the
// changes, so fn may read the session but must not change it.
func (s *clientSessionService) Subscribe(fn func(models.Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// publish replaces the session and notifies subscribers outside mu.
func (s *clientSessionService) publish(next models.Session) models.Session {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.session = next
	fns := make([]func(models.Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
	return next
}
