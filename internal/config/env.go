// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags; slice fields honour `envSeparator`, and [SeedUser]
// entries are decoded through their UnmarshalText method.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
