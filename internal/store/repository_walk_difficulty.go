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

type walkDifficultyRepository struct {
	*DB
	logger *logger.Logger
}

// NewWalkDifficultyRepository constructs a [WalkDifficultyRepository] backed
// by the "walk_difficulties" table.
func NewWalkDifficultyRepository(db *DB, logger *logger.Logger) WalkDifficultyRepository {
	logger.Debug().Msg("creating walk difficulty repository")
	return &walkDifficultyRepository{
		DB:     db,
		logger: logger,
	}
}

func scanWalkDifficulty(row scanner, difficulty *models.WalkDifficulty) error {
	return row.Scan(&difficulty.ID, &difficulty.Code)
}

func (r *walkDifficultyRepository) GetAll(ctx context.Context) ([]models.WalkDifficulty, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectWalkDifficultiesQuery(r.builder)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "walkDifficultyRepository.GetAll").Msg("failed to execute query for getting walk difficulties")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	difficulties := make([]models.WalkDifficulty, 0, 4)
	for rows.Next() {
		var difficulty models.WalkDifficulty
		if scanErr := scanWalkDifficulty(rows, &difficulty); scanErr != nil {
			log.Err(scanErr).Str("func", "walkDifficultyRepository.GetAll").Msg("failed to scan walk difficulty row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		difficulties = append(difficulties, difficulty)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "walkDifficultyRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return difficulties, nil
}

func (r *walkDifficultyRepository) Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	query, args, err := buildSelectWalkDifficultyQuery(r.builder, id)
	if err != nil {
		return models.WalkDifficulty{}, err
	}

	var difficulty models.WalkDifficulty
	if err = scanWalkDifficulty(r.QueryRowContext(ctx, query, args...), &difficulty); err != nil {
		err = r.writeError(err, ErrWalkDifficultyNotFound, nil, nil)
		logger.FromContext(ctx).Err(err).Str("func", "walkDifficultyRepository.Get").Stringer("walk_difficulty_id", id).Msg("failed to get walk difficulty")
		return models.WalkDifficulty{}, err
	}

	return difficulty, nil
}

func (r *walkDifficultyRepository) Add(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	query, args, err := buildInsertWalkDifficultyQuery(r.builder, difficulty)
	if err != nil {
		return models.WalkDifficulty{}, err
	}

	var saved models.WalkDifficulty
	if err = scanWalkDifficulty(r.QueryRowContext(ctx, query, args...), &saved); err != nil {
		err = r.writeError(err, ErrWalkDifficultyNotFound, nil, ErrWalkDifficultyCodeExists)
		logger.FromContext(ctx).Err(err).Str("func", "walkDifficultyRepository.Add").Str("code", difficulty.Code).Msg("failed to insert walk difficulty")
		return models.WalkDifficulty{}, err
	}

	return saved, nil
}

func (r *walkDifficultyRepository) Update(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	query, args, err := buildUpdateWalkDifficultyQuery(r.builder, id, difficulty)
	if err != nil {
		return models.WalkDifficulty{}, err
	}

	var updated models.WalkDifficulty
	if err = scanWalkDifficulty(r.QueryRowContext(ctx, query, args...), &updated); err != nil {
		err = r.writeError(err, ErrWalkDifficultyNotFound, nil, ErrWalkDifficultyCodeExists)
		logger.FromContext(ctx).Err(err).Str("func", "walkDifficultyRepository.Update").Stringer("walk_difficulty_id", id).Msg("failed to update walk difficulty")
		return models.WalkDifficulty{}, err
	}

	return updated, nil
}

func (r *walkDifficultyRepository) Delete(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	query, args, err := buildDeleteWalkDifficultyQuery(r.builder, id)
	if err != nil {
		return models.WalkDifficulty{}, err
	}

	var deleted models.WalkDifficulty
	if err = scanWalkDifficulty(r.QueryRowContext(ctx, query, args...), &deleted); err != nil {
		err = r.writeError(err, ErrWalkDifficultyNotFound, ErrWalkDifficultyInUse, nil)
		logger.FromContext(ctx).Err(err).Str("func", "walkDifficultyRepository.Delete").Stringer("walk_difficulty_id", id).Msg("failed to delete walk difficulty")
		return models.WalkDifficulty{}, err
	}

	return deleted, nil
}
