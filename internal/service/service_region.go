// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

type regionService struct {
	regionRepository store.RegionRepository
	idGenerator      IDGenerator

	logger *logger.Logger
}

func NewRegionService(regionRepository store.RegionRepository, idGenerator IDGenerator, logger *logger.Logger) RegionService {
	return &regionService{
		regionRepository: regionRepository,
		idGenerator:      idGenerator,
		logger:           logger,
	}
}

func (r *regionService) GetAll(ctx context.Context) ([]models.Region, error) {
	return r.regionRepository.GetAll(ctx)
}

func (r *regionService) Get(ctx context.Context, id uuid.UUID) (models.Region, error) {
	return r.regionRepository.Get(ctx, id)
}

// Add assigns a fresh identifier and stores the region. Codes are kept
// upper-case ("akl" is stored as "AKL").
func (r *regionService) Add(ctx context.Context, region models.Region) (models.Region, error) {
	log := logger.FromContext(ctx)

	region.ID = r.idGenerator.Generate()
	region.Code = normalizeRegionCode(region.Code)

	added, err := r.regionRepository.Add(ctx, region)
	if err != nil {
		log.Err(err).Str("func", "*regionService.Add").Str("code", region.Code).Msg("error adding region")
		return models.Region{}, fmt.Errorf("error adding region: %w", err)
	}

	return added, nil
}

func (r *regionService) Update(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error) {
	region.Code = normalizeRegionCode(region.Code)
	return r.regionRepository.Update(ctx, id, region)
}

func (r *regionService) Delete(ctx context.Context, id uuid.UUID) (models.Region, error) {
	return r.regionRepository.Delete(ctx, id)
}

func normalizeRegionCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
