// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/nz-walks/models"
)

// RegionValidator checks that a region has a code and a name.
type RegionValidator struct{}

func NewRegionValidator() Validator {
	return &RegionValidator{}
}

func (v *RegionValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var region models.Region
	switch value := obj.(type) {
	case models.Region:
		region = value
	case *models.Region:
		if value == nil {
			return ErrUnsupportedType
		}
		region = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldCode, FieldName}
	}

	errs := NewValidationErrors()
	for _, f := range fields {
		switch f {
		case FieldCode:
			if strings.TrimSpace(region.Code) == "" {
				errs.Add(FieldCode, requiredMessage(FieldCode))
			}
		case FieldName:
			if strings.TrimSpace(region.Name) == "" {
				errs.Add(FieldName, requiredMessage(FieldName))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.OrNil()
}
