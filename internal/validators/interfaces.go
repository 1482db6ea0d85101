// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks domain values before services hand them to the
// store. Every failing field is collected into a [ValidationErrors] value,
// which handlers render as a 400 problem document.
//
// Validators accept optional field names restricting the check to a subset
// of fields. Unknown names yield ErrUnknownField.
package validators

import "context"

// Validator validates a single domain value.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
