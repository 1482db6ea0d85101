// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/nz-walks/internal/service"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/MKhiriev/nz-walks/models/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regionsRouter(t *testing.T, regions *mockRegionService) http.Handler {
	return newTestRouter(t, &service.Services{RegionService: regions})
}

func TestGetAllRegions(t *testing.T) {
	image := "https://example.org/akl.png"
	router := regionsRouter(t, &mockRegionService{
		getAllFn: func(ctx context.Context) ([]models.Region, error) {
			return []models.Region{
				{ID: testRegionID, Code: "AKL", Name: "Auckland", RegionImageURL: &image},
				{ID: uuid.New(), Code: "NSN", Name: "Nelson"},
			}, nil
		},
	})

	rr := serve(router, http.MethodGet, "/Regions", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []dto.Region
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "AKL", got[0].Code)
	require.NotNil(t, got[0].RegionImageURL)
	assert.Equal(t, image, *got[0].RegionImageURL)
	assert.Nil(t, got[1].RegionImageURL)
}

func TestGetRegion_NotFound(t *testing.T) {
	router := regionsRouter(t, &mockRegionService{
		getFn: func(ctx context.Context, id uuid.UUID) (models.Region, error) {
			return models.Region{}, fmt.Errorf("error getting region: %w", store.ErrRegionNotFound)
		},
	})

	rr := serve(router, http.MethodGet, "/Regions/"+testRegionID.String(), "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, store.ErrRegionNotFound.Error()+"\n", rr.Body.String())
}

func TestAddRegion_Created(t *testing.T) {
	var received models.Region
	router := regionsRouter(t, &mockRegionService{
		addFn: func(ctx context.Context, region models.Region) (models.Region, error) {
			received = region
			region.ID = testRegionID
			return region, nil
		},
	})

	rr := serve(router, http.MethodPost, "/Regions", `{"code":"AKL","name":"Auckland"}`, writerToken)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/Regions/"+testRegionID.String(), rr.Header().Get("Location"))
	assert.Equal(t, "AKL", received.Code)
	assert.Equal(t, "Auckland", received.Name)
	assert.Nil(t, received.RegionImageURL)
}

func TestRegionConflicts(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		err    error
	}{
		{name: "add with duplicate code", method: http.MethodPost, path: "/Regions", err: store.ErrRegionCodeExists},
		{name: "update with duplicate code", method: http.MethodPut, path: "/Regions/" + testRegionID.String(), err: store.ErrRegionCodeExists},
		{name: "delete region used by walks", method: http.MethodDelete, path: "/Regions/" + testRegionID.String(), err: store.ErrRegionInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := regionsRouter(t, &mockRegionService{
				addFn: func(ctx context.Context, region models.Region) (models.Region, error) {
					return models.Region{}, tt.err
				},
				updateFn: func(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error) {
					return models.Region{}, tt.err
				},
				deleteFn: func(ctx context.Context, id uuid.UUID) (models.Region, error) {
					return models.Region{}, tt.err
				},
			})

			rr := serve(router, tt.method, tt.path, `{"code":"AKL","name":"Auckland"}`, writerToken)

			assert.Equal(t, http.StatusConflict, rr.Code)
			assert.Equal(t, tt.err.Error()+"\n", rr.Body.String())
		})
	}
}

func TestUpdateRegion(t *testing.T) {
	router := regionsRouter(t, &mockRegionService{
		updateFn: func(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error) {
			region.ID = id
			return region, nil
		},
	})

	rr := serve(router, http.MethodPut, "/Regions/"+testRegionID.String(), `{"code":"NSN","name":"Nelson"}`, writerToken)

	require.Equal(t, http.StatusOK, rr.Code)
	var got dto.Region
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, dto.Region{ID: testRegionID, Code: "NSN", Name: "Nelson"}, got)
}

func TestAddRegion_ReaderIsForbidden(t *testing.T) {
	router := regionsRouter(t, &mockRegionService{})

	rr := serve(router, http.MethodPost, "/Regions", `{"code":"AKL","name":"Auckland"}`, readerToken)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
