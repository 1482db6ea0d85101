// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/logger"
)

// Storages bundles every repository over a single database handle.
type Storages struct {
	DB *DB

	WalkRepository           WalkRepository
	RegionRepository         RegionRepository
	WalkDifficultyRepository WalkDifficultyRepository
	UserRepository           UserRepository
}

// NewStorages opens the database configured in cfg, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already opened handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                       db,
		WalkRepository:           NewWalkRepository(db, log),
		RegionRepository:         NewRegionRepository(db, log),
		WalkDifficultyRepository: NewWalkDifficultyRepository(db, log),
		UserRepository:           NewUserRepository(db, log),
	}
}

// Close releases the database pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
