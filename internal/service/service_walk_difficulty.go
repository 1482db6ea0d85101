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

type walkDifficultyService struct {
	walkDifficultyRepository store.WalkDifficultyRepository
	idGenerator              IDGenerator

	logger *logger.Logger
}

func NewWalkDifficultyService(walkDifficultyRepository store.WalkDifficultyRepository, idGenerator IDGenerator, logger *logger.Logger) WalkDifficultyService {
	return &walkDifficultyService{
		walkDifficultyRepository: walkDifficultyRepository,
		idGenerator:              idGenerator,
		logger:                   logger,
	}
}

func (w *walkDifficultyService) GetAll(ctx context.Context) ([]models.WalkDifficulty, error) {
	return w.walkDifficultyRepository.GetAll(ctx)
}

func (w *walkDifficultyService) Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	return w.walkDifficultyRepository.Get(ctx, id)
}

func (w *walkDifficultyService) Add(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	log := logger.FromContext(ctx)

	difficulty.ID = w.idGenerator.Generate()
	difficulty.Code = strings.TrimSpace(difficulty.Code)

	added, err := w.walkDifficultyRepository.Add(ctx, difficulty)
	if err != nil {
		log.Err(err).Str("func", "*walkDifficultyService.Add").Str("code", difficulty.Code).Msg("error adding walk difficulty")
		return models.WalkDifficulty{}, fmt.Errorf("error adding walk difficulty: %w", err)
	}

	return added, nil
}

func (w *walkDifficultyService) Update(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	difficulty.Code = strings.TrimSpace(difficulty.Code)
	return w.walkDifficultyRepository.Update(ctx, id, difficulty)
}

func (w *walkDifficultyService) Delete(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	return w.walkDifficultyRepository.Delete(ctx, id)
}
