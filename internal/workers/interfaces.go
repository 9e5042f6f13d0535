// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

// Package workers runs the client's optional background jobs.
//
// Nothing here starts on its own: the core defines no automatic refresh
// policy, and a job with a zero interval stays idle.
package workers

import (
	"context"

	"github.com/MatthewMacalaladGBC/Noveltea-app/models"
)

// Worker is a background job with an explicit lifecycle.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) { /* spawn goroutine */ }
//	func (w *MyWorker) Stop()                     { /* wait for it */ }
type Worker interface {
	// Start launches the job. It must not block.
	Start(ctx context.Context)

	// Stop ends the job and waits for it to exit. Calling it on a job that
	// is not running is a no-op.
	Stop()
}

// Refresher is the explicit refresh operation the refresh job repeats.
type Refresher interface {
	Refresh(ctx context.Context) (models.LibrarySnapshot, error)
}
