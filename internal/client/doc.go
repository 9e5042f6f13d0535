// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

// Package client implements the interactive client application runtime.
//
// It restores the stored session and then alternates between the sign-in
// screens and the main screen for the lifetime of the process.
package client
