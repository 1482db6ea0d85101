// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationErrors collects human-readable messages per request field.
// It matches [ErrValidation] with errors.Is.
type ValidationErrors struct {
	Fields map[string][]string
}

// NewValidationErrors returns an empty collection.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{Fields: make(map[string][]string)}
}

// EmptyBody reports a missing request body under the request's name.
func EmptyBody(requestName string) *ValidationErrors {
	errs := NewValidationErrors()
	errs.Add(requestName, fmt.Sprintf("%s cannot be empty.", requestName))
	return errs
}

// Add appends message to field.
func (e *ValidationErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any message was added.
func (e *ValidationErrors) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns e as an error if it holds messages, nil otherwise.
func (e *ValidationErrors) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationErrors) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], " "))
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) Unwrap() error {
	return ErrValidation
}
