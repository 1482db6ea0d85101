// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// maxBodyBytes bounds decoded request bodies.
const maxBodyBytes = 1 << 20

// decodeBody decodes the JSON body of r into dst. An empty or null body is
// reported as a validation failure under requestName; malformed JSON wraps
// [ErrInvalidJSON].
func decodeBody(w http.ResponseWriter, r *http.Request, requestName string, dst any) error {
	var raw json.RawMessage
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw)
	switch {
	case errors.Is(err, io.EOF):
		return validators.EmptyBody(requestName)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	case bytes.Equal(raw, []byte("null")):
		return validators.EmptyBody(requestName)
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// idFromPath parses the {id} route parameter. A value that is not a UUID
// gets 404, as if no route matched.
func idFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.FromRequest(r).Info().Str("id", raw).Msg("id is not a uuid")
		http.NotFound(w, r)
		return uuid.Nil, false
	}
	return id, true
}
