// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/models"
)

type Services struct {
	AuthService           AuthService
	WalkService           WalkService
	RegionService         RegionService
	WalkDifficultyService WalkDifficultyService
	AppInfoService        AppInfoService
}

// NewServices wires every service to its repositories. Write operations of
// walks, regions and difficulties go through the validation wrappers.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	idGenerator := utils.NewUUIDGenerator()

	walkService := NewWalkValidationService(storages.RegionRepository, storages.WalkDifficultyRepository).
		Wrap(NewWalkService(storages.WalkRepository, idGenerator, logger))
	regionService := NewRegionValidationService().
		Wrap(NewRegionService(storages.RegionRepository, idGenerator, logger))
	walkDifficultyService := NewWalkDifficultyValidationService().
		Wrap(NewWalkDifficultyService(storages.WalkDifficultyRepository, idGenerator, logger))

	return &Services{
		AuthService:           NewAuthService(storages.UserRepository, idGenerator, cfg.App, logger),
		WalkService:           walkService,
		RegionService:         regionService,
		WalkDifficultyService: walkDifficultyService,
		AppInfoService:        NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
