// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

package validators

import "errors"

var (
	// ErrValidation wraps every rule violation. The wrapped message lists
	// the offending fields by their JSON names.
	ErrValidation = errors.New("validation failed")

	ErrUnsupportedType = errors.New("unsupported type for validation")
)
