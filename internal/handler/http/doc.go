// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the NZ Walks API.
//
// It wires routes for authentication, walks, regions and walk difficulties,
// decodes requests into transfer objects, delegates to the service layer and
// maps service and store errors onto HTTP status codes. Request tracing,
// access logging, authentication and the writer role guard are handled by
// middleware in this package; panics, timeouts, compression and CORS are
// delegated to chi and go-chi/cors.
package http
