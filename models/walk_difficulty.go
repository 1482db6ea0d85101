// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// WalkDifficulty is a categorical difficulty label (e.g. "Easy", "Hard").
type WalkDifficulty struct {
	ID   uuid.UUID
	Code string
}

// TableName returns the name of the database table
// associated with the WalkDifficulty model.
func (d WalkDifficulty) TableName() string {
	return "walk_difficulties"
}
