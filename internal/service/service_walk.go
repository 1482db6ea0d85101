// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

type walkService struct {
	walkRepository store.WalkRepository
	idGenerator    IDGenerator

	logger *logger.Logger
}

func NewWalkService(walkRepository store.WalkRepository, idGenerator IDGenerator, logger *logger.Logger) WalkService {
	return &walkService{
		walkRepository: walkRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

func (w *walkService) GetAll(ctx context.Context) ([]models.Walk, error) {
	return w.walkRepository.GetAll(ctx)
}

func (w *walkService) Get(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	return w.walkRepository.Get(ctx, id)
}

// Add assigns a fresh identifier and stores the walk.
func (w *walkService) Add(ctx context.Context, walk models.Walk) (models.Walk, error) {
	log := logger.FromContext(ctx)

	walk.ID = w.idGenerator.Generate()
	added, err := w.walkRepository.Add(ctx, walk)
	if err != nil {
		log.Err(err).Str("func", "*walkService.Add").Str("name", walk.Name).Msg("error adding walk")
		return models.Walk{}, fmt.Errorf("error adding walk: %w", err)
	}

	return added, nil
}

func (w *walkService) Update(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error) {
	return w.walkRepository.Update(ctx, id, walk)
}

func (w *walkService) Delete(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	return w.walkRepository.Delete(ctx, id)
}
