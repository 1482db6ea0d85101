// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/nz-walks/internal/mapper"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/models/dto"
)

func (h *Handler) getAllWalks(w http.ResponseWriter, r *http.Request) {
	walks, err := h.services.WalkService.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalksToDTO(walks), http.StatusOK)
}

func (h *Handler) getWalk(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	walk, err := h.services.WalkService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkToDTO(walk), http.StatusOK)
}

// addWalk answers 201 with a Location header pointing at the new walk.
func (h *Handler) addWalk(w http.ResponseWriter, r *http.Request) {
	var request dto.AddWalkRequest
	if err := decodeBody(w, r, "AddWalkRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	walk, err := h.services.WalkService.Add(r.Context(), mapper.AddWalkRequestToWalk(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteCreated(w, "/Walks/"+walk.ID.String(), mapper.WalkToDTO(walk))
}

func (h *Handler) updateWalk(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var request dto.UpdateWalkRequest
	if err := decodeBody(w, r, "UpdateWalkRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	walk, err := h.services.WalkService.Update(r.Context(), id, mapper.UpdateWalkRequestToWalk(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkToDTO(walk), http.StatusOK)
}

func (h *Handler) deleteWalk(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	walk, err := h.services.WalkService.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkToDTO(walk), http.StatusOK)
}
