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

// regionRepository is the SQL-backed implementation of [RegionRepository].
// It operates on the "regions" table.
type regionRepository struct {
	*DB
	logger *logger.Logger
}

// NewRegionRepository constructs a [RegionRepository] backed by db.
func NewRegionRepository(db *DB, logger *logger.Logger) RegionRepository {
	logger.Debug().Msg("creating region repository")
	return &regionRepository{
		DB:     db,
		logger: logger,
	}
}

func scanRegion(row scanner, region *models.Region) error {
	return row.Scan(&region.ID, &region.Code, &region.Name, &region.RegionImageURL)
}

// GetAll returns every region ordered by name.
func (r *regionRepository) GetAll(ctx context.Context) ([]models.Region, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRegionsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "regionRepository.GetAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "regionRepository.GetAll").Msg("failed to execute query for getting regions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	regions := make([]models.Region, 0, 16)
	for rows.Next() {
		var region models.Region
		if scanErr := scanRegion(rows, &region); scanErr != nil {
			log.Err(scanErr).Str("func", "regionRepository.GetAll").Msg("failed to scan region row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		regions = append(regions, region)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "regionRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return regions, nil
}

// Get returns the region with the given id or [ErrRegionNotFound].
func (r *regionRepository) Get(ctx context.Context, id uuid.UUID) (models.Region, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRegionQuery(r.builder, id)
	if err != nil {
		return models.Region{}, err
	}

	var region models.Region
	if err = scanRegion(r.QueryRowContext(ctx, query, args...), &region); err != nil {
		err = r.writeError(err, ErrRegionNotFound, nil, nil)
		log.Err(err).Str("func", "regionRepository.Get").Stringer("region_id", id).Msg("failed to get region")
		return models.Region{}, err
	}

	return region, nil
}

// Add inserts region. A duplicate code yields [ErrRegionCodeExists].
func (r *regionRepository) Add(ctx context.Context, region models.Region) (models.Region, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRegionQuery(r.builder, region)
	if err != nil {
		return models.Region{}, err
	}

	var saved models.Region
	if err = scanRegion(r.QueryRowContext(ctx, query, args...), &saved); err != nil {
		err = r.writeError(err, ErrRegionNotFound, nil, ErrRegionCodeExists)
		log.Err(err).Str("func", "regionRepository.Add").Str("code", region.Code).Msg("failed to insert region")
		return models.Region{}, err
	}

	return saved, nil
}

// Update overwrites code, name and image URL of the region with the given id.
func (r *regionRepository) Update(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRegionQuery(r.builder, id, region)
	if err != nil {
		return models.Region{}, err
	}

	var updated models.Region
	if err = scanRegion(r.QueryRowContext(ctx, query, args...), &updated); err != nil {
		err = r.writeError(err, ErrRegionNotFound, nil, ErrRegionCodeExists)
		log.Err(err).Str("func", "regionRepository.Update").Stringer("region_id", id).Msg("failed to update region")
		return models.Region{}, err
	}

	return updated, nil
}

// Delete removes the region and returns it. A region still referenced by
// walks yields [ErrRegionInUse].
func (r *regionRepository) Delete(ctx context.Context, id uuid.UUID) (models.Region, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRegionQuery(r.builder, id)
	if err != nil {
		return models.Region{}, err
	}

	var deleted models.Region
	if err = scanRegion(r.QueryRowContext(ctx, query, args...), &deleted); err != nil {
		err = r.writeError(err, ErrRegionNotFound, ErrRegionInUse, nil)
		log.Err(err).Str("func", "regionRepository.Delete").Stringer("region_id", id).Msg("failed to delete region")
		return models.Region{}, err
	}

	return deleted, nil
}
