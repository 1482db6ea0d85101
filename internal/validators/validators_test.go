// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/nz-walks/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	errs := NewValidationErrors()
	assert.False(t, errs.HasErrors())
	assert.NoError(t, errs.OrNil())

	errs.Add(FieldName, "Name is required.")
	errs.Add(FieldCode, "Code is required.")
	errs.Add(FieldCode, "Code is too long.")

	require.True(t, errs.HasErrors())
	err := errs.OrNil()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation failed: Code: Code is required. Code is too long.; Name: Name is required.", err.Error())

	wrapped := fmt.Errorf("error adding walk: %w", err)
	var verrs *ValidationErrors
	require.True(t, errors.As(wrapped, &verrs))
	assert.Len(t, verrs.Fields[FieldCode], 2)
}

func TestValidationErrors_ZeroValueAdd(t *testing.T) {
	var errs ValidationErrors
	errs.Add(FieldName, "x")
	assert.True(t, errs.HasErrors())

	var nilErrs *ValidationErrors
	assert.False(t, nilErrs.HasErrors())
}

func TestEmptyBody(t *testing.T) {
	errs := EmptyBody("AddWalkRequest")
	assert.Equal(t, map[string][]string{"AddWalkRequest": {"AddWalkRequest cannot be empty."}}, errs.Fields)
}

func TestRegionValidator(t *testing.T) {
	v := NewRegionValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		obj        any
		fields     []string
		wantFields []string
		wantErr    error
	}{
		{name: "valid", obj: models.Region{Code: "AKL", Name: "Auckland"}},
		{name: "valid pointer", obj: &models.Region{Code: "AKL", Name: "Auckland"}},
		{name: "missing both", obj: models.Region{}, wantFields: []string{FieldCode, FieldName}},
		{name: "blank name", obj: models.Region{Code: "AKL", Name: " "}, wantFields: []string{FieldName}},
		{name: "scoped to code", obj: models.Region{Name: "Auckland"}, fields: []string{FieldCode}, wantFields: []string{FieldCode}},
		{name: "unknown field", obj: models.Region{}, fields: []string{"Area"}, wantErr: ErrUnknownField},
		{name: "wrong type", obj: models.Walk{}, wantErr: ErrUnsupportedType},
		{name: "nil pointer", obj: (*models.Region)(nil), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			assertValidation(t, err, tt.wantFields, tt.wantErr)
		})
	}
}

func TestWalkDifficultyValidator(t *testing.T) {
	v := NewWalkDifficultyValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		obj        any
		fields     []string
		wantFields []string
		wantErr    error
	}{
		{name: "valid", obj: models.WalkDifficulty{Code: "Easy"}},
		{name: "valid pointer", obj: &models.WalkDifficulty{Code: "Hard"}},
		{name: "blank code", obj: models.WalkDifficulty{Code: "\t"}, wantFields: []string{FieldCode}},
		{name: "unknown field", obj: models.WalkDifficulty{}, fields: []string{FieldName}, wantErr: ErrUnknownField},
		{name: "wrong type", obj: "Easy", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			assertValidation(t, err, tt.wantFields, tt.wantErr)
		})
	}
}

func TestCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		obj        any
		wantFields []string
		wantErr    error
	}{
		{name: "valid", obj: models.Credentials{Username: "reader@nzwalks.com", Password: "pw"}},
		{name: "missing password", obj: models.Credentials{Username: "reader@nzwalks.com"}, wantFields: []string{FieldPassword}},
		{name: "missing both", obj: models.Credentials{}, wantFields: []string{FieldUsername, FieldPassword}},
		{name: "pointer is unsupported", obj: &models.Credentials{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			assertValidation(t, err, tt.wantFields, tt.wantErr)
		})
	}
}

func assertValidation(t *testing.T, err error, wantFields []string, wantErr error) {
	t.Helper()

	if wantErr != nil {
		assert.ErrorIs(t, err, wantErr)
		return
	}
	if len(wantFields) == 0 {
		assert.NoError(t, err)
		return
	}

	var verrs *ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected *ValidationErrors, got %v", err)
	assert.Len(t, verrs.Fields, len(wantFields))
	for _, f := range wantFields {
		assert.Contains(t, verrs.Fields, f)
	}
}
