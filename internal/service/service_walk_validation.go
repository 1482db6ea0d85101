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

// WalkValidationService checks walks, including that the referenced region
// and difficulty exist, before the inner service writes them.
type WalkValidationService struct {
	inner     WalkService
	validator validators.Validator
}

func NewWalkValidationService(regions validators.RegionGetter, difficulties validators.WalkDifficultyGetter) WalkServiceWrapper {
	return &WalkValidationService{
		validator: validators.NewWalkValidator(regions, difficulties),
	}
}

func (v *WalkValidationService) GetAll(ctx context.Context) ([]models.Walk, error) {
	return v.inner.GetAll(ctx)
}

func (v *WalkValidationService) Get(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	return v.inner.Get(ctx, id)
}

func (v *WalkValidationService) Add(ctx context.Context, walk models.Walk) (models.Walk, error) {
	if err := v.validator.Validate(ctx, walk); err != nil {
		return models.Walk{}, fmt.Errorf("error during walk validation before saving: %w", err)
	}

	return v.inner.Add(ctx, walk)
}

func (v *WalkValidationService) Update(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error) {
	if err := v.validator.Validate(ctx, walk); err != nil {
		return models.Walk{}, fmt.Errorf("error during walk validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, walk)
}

func (v *WalkValidationService) Delete(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	return v.inner.Delete(ctx, id)
}

func (v *WalkValidationService) Wrap(inner WalkService) WalkService {
	v.inner = inner
	return v
}
