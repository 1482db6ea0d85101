// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// Walk is a named trail with a length and two categorical references.
type Walk struct {
	// ID is the application-assigned identifier of the walk.
	ID uuid.UUID

	// Name is the display name of the walk. Never blank once persisted.
	Name string

	// Length is the walk length in kilometres. Always greater than zero.
	Length float64

	// RegionID references an existing [Region].
	RegionID uuid.UUID

	// WalkDifficultyID references an existing [WalkDifficulty].
	WalkDifficultyID uuid.UUID

	// Region is populated by repository reads that join the referenced
	// region. It is nil on values built from requests.
	Region *Region

	// WalkDifficulty is populated by repository reads that join the
	// referenced difficulty. It is nil on values built from requests.
	WalkDifficulty *WalkDifficulty
}

// TableName returns the name of the database table
// associated with the Walk model.
func (w Walk) TableName() string {
	return "walks"
}
