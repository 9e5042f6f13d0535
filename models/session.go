// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package models

// SessionStatus is the lifecycle state of the client session.
type SessionStatus int

const (
	// SessionRestoring is the initial state while a persisted credential is
	// being revalidated. User and Token must not be read in this state.
	SessionRestoring SessionStatus = iota
	// SessionAnonymous means no validated credential is held.
	SessionAnonymous
	// SessionAuthenticated means User and Token are both present and the
	// token was accepted by the backend.
	SessionAuthenticated
)

// String implements [fmt.Stringer].
func (s SessionStatus) String() string {
	switch s {
	case SessionRestoring:
		return "restoring"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the authentication state.
// User is non-nil if and only if Status is SessionAuthenticated, in which
// case Token is non-empty.
type Session struct {
	Status SessionStatus
	User   *UserProfile
	Token  string
}

// Authenticated reports whether the snapshot holds a validated credential.
func (s Session) Authenticated() bool {
	return s.Status == SessionAuthenticated && s.User != nil && s.Token != ""
}
