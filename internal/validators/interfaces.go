// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Noveltea Authors

// Package validators checks outgoing request payloads before they reach
// the network.
//
// Rules live next to the payload types as `validate` struct tags; this
// package only runs them and renders violations with JSON field names so
// they read the same way backend validation errors do.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to specific Go struct field names.
	Validate(context.Context, any, ...string) error
}
