// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

// walkRepository is the SQL-backed implementation of [WalkRepository].
//
// Reads join "regions" and "walk_difficulties" so every returned walk carries
// its Region and WalkDifficulty. Writes return the bare walk row.
type walkRepository struct {
	*DB
	logger *logger.Logger
}

// NewWalkRepository constructs a [WalkRepository] backed by db.
func NewWalkRepository(db *DB, logger *logger.Logger) WalkRepository {
	logger.Debug().Msg("creating walk repository")
	return &walkRepository{
		DB:     db,
		logger: logger,
	}
}

func scanWalk(row scanner, walk *models.Walk) error {
	return row.Scan(&walk.ID, &walk.Name, &walk.Length, &walk.RegionID, &walk.WalkDifficultyID)
}

func scanWalkWithReferences(row scanner, walk *models.Walk) error {
	region := &models.Region{}
	difficulty := &models.WalkDifficulty{}

	err := row.Scan(
		&walk.ID,
		&walk.Name,
		&walk.Length,
		&walk.RegionID,
		&walk.WalkDifficultyID,
		&region.ID,
		&region.Code,
		&region.Name,
		&region.RegionImageURL,
		&difficulty.ID,
		&difficulty.Code,
	)
	if err != nil {
		return err
	}

	walk.Region = region
	walk.WalkDifficulty = difficulty
	return nil
}

// GetAll returns every walk ordered by name.
func (w *walkRepository) GetAll(ctx context.Context) ([]models.Walk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWalksQuery(w.builder)
	if err != nil {
		log.Err(err).Str("func", "walkRepository.GetAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := w.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "walkRepository.GetAll").Msg("failed to execute query for getting walks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	walks := make([]models.Walk, 0, 50)
	for rows.Next() {
		var walk models.Walk
		if scanErr := scanWalkWithReferences(rows, &walk); scanErr != nil {
			log.Err(scanErr).Str("func", "walkRepository.GetAll").Msg("failed to scan walk row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		walks = append(walks, walk)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "walkRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return walks, nil
}

// Get returns the walk with the given id or [ErrWalkNotFound].
func (w *walkRepository) Get(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWalkQuery(w.builder, id)
	if err != nil {
		log.Err(err).Str("func", "walkRepository.Get").Msg("failed to create query")
		return models.Walk{}, err
	}

	var walk models.Walk
	if err = scanWalkWithReferences(w.QueryRowContext(ctx, query, args...), &walk); err != nil {
		err = w.writeError(err, ErrWalkNotFound, nil, nil)
		log.Err(err).Str("func", "walkRepository.Get").Stringer("walk_id", id).Msg("failed to get walk")
		return models.Walk{}, err
	}

	return walk, nil
}

// Add inserts walk. An unknown region or walk difficulty yields
// [ErrInvalidReference].
func (w *walkRepository) Add(ctx context.Context, walk models.Walk) (models.Walk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertWalkQuery(w.builder, walk)
	if err != nil {
		log.Err(err).Str("func", "walkRepository.Add").Msg("failed to create query")
		return models.Walk{}, err
	}

	var saved models.Walk
	if err = scanWalk(w.QueryRowContext(ctx, query, args...), &saved); err != nil {
		err = w.writeError(err, ErrWalkNotFound, ErrInvalidReference, nil)
		log.Err(err).
			Str("func", "walkRepository.Add").
			Stringer("region_id", walk.RegionID).
			Stringer("walk_difficulty_id", walk.WalkDifficultyID).
			Msg("failed to insert walk")
		return models.Walk{}, err
	}

	return saved, nil
}

// Update overwrites name, length, region and walk difficulty of the walk
// with the given id.
func (w *walkRepository) Update(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateWalkQuery(w.builder, id, walk)
	if err != nil {
		log.Err(err).Str("func", "walkRepository.Update").Msg("failed to create query")
		return models.Walk{}, err
	}

	var updated models.Walk
	if err = scanWalk(w.QueryRowContext(ctx, query, args...), &updated); err != nil {
		err = w.writeError(err, ErrWalkNotFound, ErrInvalidReference, nil)
		log.Err(err).Str("func", "walkRepository.Update").Stringer("walk_id", id).Msg("failed to update walk")
		return models.Walk{}, err
	}

	return updated, nil
}

// Delete removes the walk and returns the removed row.
func (w *walkRepository) Delete(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteWalkQuery(w.builder, id)
	if err != nil {
		log.Err(err).Str("func", "walkRepository.Delete").Msg("failed to create query")
		return models.Walk{}, err
	}

	var deleted models.Walk
	if err = scanWalk(w.QueryRowContext(ctx, query, args...), &deleted); err != nil {
		err = w.writeError(err, ErrWalkNotFound, nil, nil)
		log.Err(err).Str("func", "walkRepository.Delete").Stringer("walk_id", id).Msg("failed to delete walk")
		return models.Walk{}, err
	}

	return deleted, nil
}
