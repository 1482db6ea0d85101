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

type WalkDifficultyValidationService struct {
	inner     WalkDifficultyService
	validator validators.Validator
}

func NewWalkDifficultyValidationService() WalkDifficultyServiceWrapper {
	return &WalkDifficultyValidationService{
		validator: validators.NewWalkDifficultyValidator(),
	}
}

func (v *WalkDifficultyValidationService) GetAll(ctx context.Context) ([]models.WalkDifficulty, error) {
	return v.inner.GetAll(ctx)
}

func (v *WalkDifficultyValidationService) Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	return v.inner.Get(ctx, id)
}

func (v *WalkDifficultyValidationService) Add(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	if err := v.validator.Validate(ctx, difficulty); err != nil {
		return models.WalkDifficulty{}, fmt.Errorf("error during walk difficulty validation before saving: %w", err)
	}

	return v.inner.Add(ctx, difficulty)
}

func (v *WalkDifficultyValidationService) Update(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	if err := v.validator.Validate(ctx, difficulty); err != nil {
		return models.WalkDifficulty{}, fmt.Errorf("error during walk difficulty validation before updating: %w", err)
	}

	return v.inner.Update(ctx, id, difficulty)
}

func (v *WalkDifficultyValidationService) Delete(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	return v.inner.Delete(ctx, id)
}

func (v *WalkDifficultyValidationService) Wrap(inner WalkDifficultyService) WalkDifficultyService {
	v.inner = inner
	return v
}
