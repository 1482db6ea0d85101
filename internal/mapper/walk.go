// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"github.com/MKhiriev/nz-walks/models"
	"github.com/MKhiriev/nz-walks/models/dto"
)

// WalkToDTO copies the walk and, when loaded, its region and difficulty.
func WalkToDTO(walk models.Walk) dto.Walk {
	out := dto.Walk{
		ID:               walk.ID,
		Name:             walk.Name,
		Length:           walk.Length,
		RegionID:         walk.RegionID,
		WalkDifficultyID: walk.WalkDifficultyID,
	}

	if walk.Region != nil {
		region := RegionToDTO(*walk.Region)
		out.Region = &region
	}
	if walk.WalkDifficulty != nil {
		difficulty := WalkDifficultyToDTO(*walk.WalkDifficulty)
		out.WalkDifficulty = &difficulty
	}

	return out
}

func WalksToDTO(walks []models.Walk) []dto.Walk {
	out := make([]dto.Walk, 0, len(walks))
	for _, walk := range walks {
		out = append(out, WalkToDTO(walk))
	}
	return out
}

func AddWalkRequestToWalk(request dto.AddWalkRequest) models.Walk {
	return models.Walk{
		Name:             request.Name,
		Length:           request.Length,
		RegionID:         request.RegionID,
		WalkDifficultyID: request.WalkDifficultyID,
	}
}

func UpdateWalkRequestToWalk(request dto.UpdateWalkRequest) models.Walk {
	return models.Walk{
		Name:             request.Name,
		Length:           request.Length,
		RegionID:         request.RegionID,
		WalkDifficultyID: request.WalkDifficultyID,
	}
}
