// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"github.com/MKhiriev/nz-walks/models"
	"github.com/MKhiriev/nz-walks/models/dto"
)

func RegionToDTO(region models.Region) dto.Region {
	return dto.Region{
		ID:             region.ID,
		Code:           region.Code,
		Name:           region.Name,
		RegionImageURL: region.RegionImageURL,
	}
}

func RegionsToDTO(regions []models.Region) []dto.Region {
	out := make([]dto.Region, 0, len(regions))
	for _, region := range regions {
		out = append(out, RegionToDTO(region))
	}
	return out
}

func AddRegionRequestToRegion(request dto.AddRegionRequest) models.Region {
	return models.Region{
		Code:           request.Code,
		Name:           request.Name,
		RegionImageURL: request.RegionImageURL,
	}
}

func UpdateRegionRequestToRegion(request dto.UpdateRegionRequest) models.Region {
	return models.Region{
		Code:           request.Code,
		Name:           request.Name,
		RegionImageURL: request.RegionImageURL,
	}
}
