// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WalkRepository persists walks. Reads include the referenced region and
// walk difficulty.
type WalkRepository interface {
	GetAll(ctx context.Context) ([]models.Walk, error)
	Get(ctx context.Context, id uuid.UUID) (models.Walk, error)
	Add(ctx context.Context, walk models.Walk) (models.Walk, error)
	Update(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Walk, error)
}

// RegionRepository persists regions.
type RegionRepository interface {
	GetAll(ctx context.Context) ([]models.Region, error)
	Get(ctx context.Context, id uuid.UUID) (models.Region, error)
	Add(ctx context.Context, region models.Region) (models.Region, error)
	Update(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Region, error)
}

// WalkDifficultyRepository persists walk difficulty levels.
type WalkDifficultyRepository interface {
	GetAll(ctx context.Context) ([]models.WalkDifficulty, error)
	Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
	Add(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error)
	Update(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error)
	Delete(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
}

// UserRepository looks up accounts for login and creates bootstrap
// accounts.
type UserRepository interface {
	// Authenticate returns the user whose username matches (case-insensitive)
	// and whose bcrypt hash matches password, with its role names loaded.
	// Any mismatch yields ErrUserNotFound.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// Seed inserts user (PasswordHash already set) with its roles. It
	// returns ErrUserAlreadyExists if the username is taken.
	Seed(ctx context.Context, user models.User) (models.User, error)
}

// HealthChecker reports whether the database answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
