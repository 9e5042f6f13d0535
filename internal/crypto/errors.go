// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package crypto

import "errors"

// ErrOpenFailed is returned by [Sealer.Open] when a sealed value cannot be
// decoded or authenticated.
var ErrOpenFailed = errors.New("cannot open sealed value")
