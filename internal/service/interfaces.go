// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

type WalkService interface {
	GetAll(ctx context.Context) ([]models.Walk, error)
	Get(ctx context.Context, id uuid.UUID) (models.Walk, error)
	Add(ctx context.Context, walk models.Walk) (models.Walk, error)
	Update(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Walk, error)
}

type RegionService interface {
	GetAll(ctx context.Context) ([]models.Region, error)
	Get(ctx context.Context, id uuid.UUID) (models.Region, error)
	Add(ctx context.Context, region models.Region) (models.Region, error)
	Update(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (models.Region, error)
}

type WalkDifficultyService interface {
	GetAll(ctx context.Context) ([]models.WalkDifficulty, error)
	Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
	Add(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error)
	Update(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error)
	Delete(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
}

type AuthService interface {
	// Authenticate checks credentials and returns the user with its roles.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// SeedUsers creates the configured bootstrap accounts that do not exist yet.
	SeedUsers(ctx context.Context, users []config.SeedUser) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator issues identifiers for new records.
type IDGenerator interface {
	Generate() uuid.UUID
}

// WalkServiceWrapper defines middleware composition for WalkService.
// Implementations wrap an existing WalkService to add behavior such as
// validation.
type WalkServiceWrapper interface {
	Wrap(WalkService) WalkService
}

type RegionServiceWrapper interface {
	Wrap(RegionService) RegionService
}

type WalkDifficultyServiceWrapper interface {
	Wrap(WalkDifficultyService) WalkDifficultyService
}
