// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/nz-walks/models/dto"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrEmptyBaseURL = errors.New("empty base url")
)

// ValidationError carries the field messages of a 400 ValidationProblem
// response. It matches [ErrBadRequest].
type ValidationError struct {
	Problem dto.ValidationProblem
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Problem.Errors))
	for field := range e.Problem.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Problem.Errors[field], " ")))
	}

	return fmt.Sprintf("%s: %s", e.Problem.Title, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}
