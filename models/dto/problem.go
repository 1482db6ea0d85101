// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dto

// ValidationProblem is the 400 response body listing every failed field.
type ValidationProblem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}
