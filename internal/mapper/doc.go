// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mapper projects domain records onto transfer objects and back.
// Functions are pure: no validation, no I/O.
package mapper
