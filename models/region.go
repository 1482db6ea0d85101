// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Region is a geographic area walks belong to.
type Region struct {
	// ID is the application-assigned identifier of the region.
	ID uuid.UUID

	// Code is the short geographic code of the region (e.g. "AKL").
	Code string

	// Name is the human-readable region name.
	Name string

	// RegionImageURL optionally references an image of the region.
	RegionImageURL *string
}

// TableName returns the name of the database table
// associated with the Region model.
func (r Region) TableName() string {
	return "regions"
}
