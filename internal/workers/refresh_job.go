// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/logger"
	"github.com/MatthewMacalaladGBC/Noveltea-app/internal/service"
	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// RefreshJob calls Refresh on a ticker and hands every successful snapshot
// to a callback.
type RefreshJob struct {
	refresher  Refresher
	interval   time.Duration
	onSnapshot func(models.LibrarySnapshot)
	logger     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates an idle job. A non-positive interval disables it:
// Start then does nothing. onSnapshot may be nil.
func NewRefreshJob(refresher Refresher, interval time.Duration, onSnapshot func(models.LibrarySnapshot), log *logger.Logger) *RefreshJob {
	return &RefreshJob{
		refresher:  refresher,
		interval:   interval,
		onSnapshot: onSnapshot,
		logger:     log,
	}
}

// Enabled reports whether Start will launch anything.
func (j *RefreshJob) Enabled() bool {
	return j.interval > 0
}

// Start implements [Worker]. Any running instance is stopped first. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context) {
	if !j.Enabled() {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *RefreshJob) tick(ctx context.Context) {
	snap, err := j.refresher.Refresh(ctx)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		// signed out between ticks; try again later
		return
	case err != nil:
		j.logger.Warn().Err(err).Str("func", "RefreshJob.tick").Msg("background refresh failed")
		return
	}

	if j.onSnapshot != nil && ctx.Err() == nil {
		j.onSnapshot(snap)
	}
}

// Stop implements [Worker].
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
