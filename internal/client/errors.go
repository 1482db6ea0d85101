// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrInvalidID     = errors.New("id must be a uuid")
	ErrInvalidLength = errors.New("length must be a number")
)
