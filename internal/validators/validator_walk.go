// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

// RegionGetter is the subset of [store.RegionRepository] needed to check
// that a walk references an existing region.
type RegionGetter interface {
	Get(ctx context.Context, id uuid.UUID) (models.Region, error)
}

// WalkDifficultyGetter is the subset of [store.WalkDifficultyRepository]
// needed to check that a walk references an existing difficulty.
type WalkDifficultyGetter interface {
	Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
}

// WalkValidator checks walk fields and that RegionID and WalkDifficultyID
// point at stored rows. All failing fields are reported together.
type WalkValidator struct {
	regions      RegionGetter
	difficulties WalkDifficultyGetter
}

// NewWalkValidator constructs a [Validator] for [models.Walk].
func NewWalkValidator(regions RegionGetter, difficulties WalkDifficultyGetter) Validator {
	return &WalkValidator{
		regions:      regions,
		difficulties: difficulties,
	}
}

// Validate accepts models.Walk or *models.Walk. Without fields it checks
// Name, Length, RegionId and WalkDifficultyId.
//
// A lookup failure other than not-found is returned as is, so that callers
// can tell a broken store from a bad request.
func (v *WalkValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Walk:
		return v.validateWalk(ctx, value, fields...)
	case *models.Walk:
		if value == nil {
			return fmt.Errorf("%w: nil walk", ErrUnsupportedType)
		}
		return v.validateWalk(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *WalkValidator) validateWalk(ctx context.Context, walk models.Walk, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldLength, FieldRegionID, FieldWalkDifficultyID}
	}

	errs := NewValidationErrors()
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(walk.Name) == "" {
				errs.Add(FieldName, requiredMessage(FieldName))
			}
		case FieldLength:
			if walk.Length <= 0 {
				errs.Add(FieldLength, FieldLength+" should be greater than zero.")
			}
		case FieldRegionID:
			exists, err := v.regionExists(ctx, walk.RegionID)
			if err != nil {
				return err
			}
			if !exists {
				errs.Add(FieldRegionID, invalidMessage(FieldRegionID))
			}
		case FieldWalkDifficultyID:
			exists, err := v.difficultyExists(ctx, walk.WalkDifficultyID)
			if err != nil {
				return err
			}
			if !exists {
				errs.Add(FieldWalkDifficultyID, invalidMessage(FieldWalkDifficultyID))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}

func (v *WalkValidator) regionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}

	_, err := v.regions.Get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrRegionNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("error checking region reference: %w", err)
	}
}

func (v *WalkValidator) difficultyExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}

	_, err := v.difficulties.Get(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrWalkDifficultyNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("error checking walk difficulty reference: %w", err)
	}
}
