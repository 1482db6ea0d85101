// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config enables no transport.
var errNoHandlersAreCreated = errors.New("neither http nor grpc address is configured")
