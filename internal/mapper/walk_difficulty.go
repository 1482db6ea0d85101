// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mapper

import (
	"github.com/MKhiriev/nz-walks/models"
	"github.com/MKhiriev/nz-walks/models/dto"
)

func WalkDifficultyToDTO(difficulty models.WalkDifficulty) dto.WalkDifficulty {
	return dto.WalkDifficulty{
		ID:   difficulty.ID,
		Code: difficulty.Code,
	}
}

func WalkDifficultiesToDTO(difficulties []models.WalkDifficulty) []dto.WalkDifficulty {
	out := make([]dto.WalkDifficulty, 0, len(difficulties))
	for _, difficulty := range difficulties {
		out = append(out, WalkDifficultyToDTO(difficulty))
	}
	return out
}

func AddWalkDifficultyRequestToWalkDifficulty(request dto.AddWalkDifficultyRequest) models.WalkDifficulty {
	return models.WalkDifficulty{Code: request.Code}
}

func UpdateWalkDifficultyRequestToWalkDifficulty(request dto.UpdateWalkDifficultyRequest) models.WalkDifficulty {
	return models.WalkDifficulty{Code: request.Code}
}
