// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dto

import "github.com/google/uuid"

// Region is the boundary projection of [models.Region].
type Region struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	RegionImageURL *string   `json:"regionImageUrl"`
}

// AddRegionRequest is the body of POST /Regions.
type AddRegionRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	RegionImageURL *string `json:"regionImageUrl"`
}

// UpdateRegionRequest is the body of PUT /Regions/{id}.
type UpdateRegionRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	RegionImageURL *string `json:"regionImageUrl"`
}
