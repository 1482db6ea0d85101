// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/nz-walks/internal/mapper"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/models/dto"
)

func (h *Handler) getAllWalkDifficulties(w http.ResponseWriter, r *http.Request) {
	difficulties, err := h.services.WalkDifficultyService.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkDifficultiesToDTO(difficulties), http.StatusOK)
}

func (h *Handler) getWalkDifficulty(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	difficulty, err := h.services.WalkDifficultyService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkDifficultyToDTO(difficulty), http.StatusOK)
}

// addWalkDifficulty answers 201 with a Location header pointing at the new difficulty.
func (h *Handler) addWalkDifficulty(w http.ResponseWriter, r *http.Request) {
	var request dto.AddWalkDifficultyRequest
	if err := decodeBody(w, r, "AddWalkDifficultyRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	difficulty, err := h.services.WalkDifficultyService.Add(r.Context(), mapper.AddWalkDifficultyRequestToWalkDifficulty(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteCreated(w, "/WalkDifficulties/"+difficulty.ID.String(), mapper.WalkDifficultyToDTO(difficulty))
}

func (h *Handler) updateWalkDifficulty(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var request dto.UpdateWalkDifficultyRequest
	if err := decodeBody(w, r, "UpdateWalkDifficultyRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	difficulty, err := h.services.WalkDifficultyService.Update(r.Context(), id, mapper.UpdateWalkDifficultyRequestToWalkDifficulty(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkDifficultyToDTO(difficulty), http.StatusOK)
}

func (h *Handler) deleteWalkDifficulty(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	difficulty, err := h.services.WalkDifficultyService.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.WalkDifficultyToDTO(difficulty), http.StatusOK)
}
