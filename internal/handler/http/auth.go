// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/mapper"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/models/dto"
)

// login authenticates the credentials and issues a token. The token is
// returned in the body and in the Authorization response header. Bad
// credentials are answered with 400 and a fixed message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request dto.LoginRequest
	if err := decodeBody(w, r, "LoginRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, mapper.LoginRequestToCredentials(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID.String()).Strs("roles", user.Roles).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, mapper.TokenToLoginResponse(token), http.StatusOK)
}
