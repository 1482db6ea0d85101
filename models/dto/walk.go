// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dto

import "github.com/google/uuid"

// Walk is the boundary projection of [models.Walk].
//
// Region and WalkDifficulty are present when the record was read together
// with its references (GET endpoints) and omitted otherwise.
type Walk struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Length           float64         `json:"length"`
	RegionID         uuid.UUID       `json:"regionId"`
	WalkDifficultyID uuid.UUID       `json:"walkDifficultyId"`
	Region           *Region         `json:"region,omitempty"`
	WalkDifficulty   *WalkDifficulty `json:"walkDifficulty,omitempty"`
}

// AddWalkRequest is the body of POST /Walks.
type AddWalkRequest struct {
	Name             string    `json:"name"`
	Length           float64   `json:"length"`
	RegionID         uuid.UUID `json:"regionId"`
	WalkDifficultyID uuid.UUID `json:"walkDifficultyId"`
}

// UpdateWalkRequest is the body of PUT /Walks/{id}. All mutable fields are
// replaced.
type UpdateWalkRequest struct {
	Name             string    `json:"name"`
	Length           float64   `json:"length"`
	RegionID         uuid.UUID `json:"regionId"`
	WalkDifficultyID uuid.UUID `json:"walkDifficultyId"`
}
