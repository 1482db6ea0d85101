// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an empty or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings
	// (for example, an empty token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address was configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkersConfigs indicates a non-positive worker interval.
	ErrInvalidWorkersConfigs = errors.New("invalid workers configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSeedUser is returned when an APP_SEED_USERS entry cannot be
	// parsed.
	ErrInvalidSeedUser = errors.New("invalid seed user")
)
