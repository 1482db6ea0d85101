// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/nz-walks/internal/mapper"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/models/dto"
)

func (h *Handler) getAllRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.services.RegionService.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.RegionsToDTO(regions), http.StatusOK)
}

func (h *Handler) getRegion(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	region, err := h.services.RegionService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.RegionToDTO(region), http.StatusOK)
}

func (h *Handler) addRegion(w http.ResponseWriter, r *http.Request) {
	var request dto.AddRegionRequest
	if err := decodeBody(w, r, "AddRegionRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	region, err := h.services.RegionService.Add(r.Context(), mapper.AddRegionRequestToRegion(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteCreated(w, "/Regions/"+region.ID.String(), mapper.RegionToDTO(region))
}

func (h *Handler) updateRegion(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	var request dto.UpdateRegionRequest
	if err := decodeBody(w, r, "UpdateRegionRequest", &request); err != nil {
		h.writeError(w, r, err)
		return
	}

	region, err := h.services.RegionService.Update(r.Context(), id, mapper.UpdateRegionRequestToRegion(request))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.RegionToDTO(region), http.StatusOK)
}

func (h *Handler) deleteRegion(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(w, r)
	if !ok {
		return
	}

	region, err := h.services.RegionService.Delete(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, mapper.RegionToDTO(region), http.StatusOK)
}
