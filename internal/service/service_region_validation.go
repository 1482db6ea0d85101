// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nz-walks/internal/validators"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

type RegionValidationService struct {
	inner     RegionService
	validator validators.Validator
}

func NewRegionValidationService() RegionServiceWrapper {
	return &RegionValidationService{
		validator: validators.NewRegionValidator(),
	}
}

func (v *RegionValidationService) GetAll(ctx context.Context) ([]models.Region, error) {
	return v.inner.GetAll(ctx)
}

func (v *RegionValidationService) Get(ctx context.Context, id uuid.UUID) (models.Region, error) {
	return v.inner.Get(ctx, id)
}

func (v *RegionValidationService) Add(ctx context.Context, region models.Region) (models.Region, error) {
	if err := v.validator.Validate(ctx, region); err != nil {
		return models.Region{}, fmt.Errorf("error during region validation before saving: %w", err)
	}

	return v.inner.Add(ctx, region)
}

func (v *RegionValidationService) Update(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error) {
	if err := v.validator.Validate(ctx, region); err != nil {
		return models.Region{}, fmt.Errorf("error during region validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, region)
}

func (v *RegionValidationService) Delete(ctx context.Context, id uuid.UUID) (models.Region, error) {
	return v.inner.Delete(ctx, id)
}

func (v *RegionValidationService) Wrap(inner RegionService) RegionService {
	v.inner = inner
	return v
}
