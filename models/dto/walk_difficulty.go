// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dto

import "github.com/google/uuid"

// WalkDifficulty is the boundary projection of [models.WalkDifficulty].
type WalkDifficulty struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
}

// AddWalkDifficultyRequest is the body of POST /WalkDifficulties.
type AddWalkDifficultyRequest struct {
	Code string `json:"code"`
}

// UpdateWalkDifficultyRequest is the body of PUT /WalkDifficulties/{id}.
type UpdateWalkDifficultyRequest struct {
	Code string `json:"code"`
}
