// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/nz-walks/models"
)

// WalkDifficultyValidator checks that a difficulty has a code.
type WalkDifficultyValidator struct{}

func NewWalkDifficultyValidator() Validator {
	return &WalkDifficultyValidator{}
}

func (v *WalkDifficultyValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var difficulty models.WalkDifficulty
	switch value := obj.(type) {
	case models.WalkDifficulty:
		difficulty = value
	case *models.WalkDifficulty:
		if value == nil {
			return ErrUnsupportedType
		}
		difficulty = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldCode}
	}

	errs := NewValidationErrors()
	for _, f := range fields {
		switch f {
		case FieldCode:
			if strings.TrimSpace(difficulty.Code) == "" {
				errs.Add(FieldCode, requiredMessage(FieldCode))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}
