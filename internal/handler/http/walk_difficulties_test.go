// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/nz-walks/internal/service"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/internal/validators"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/MKhiriev/nz-walks/models/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func difficultiesRouter(t *testing.T, difficulties *mockWalkDifficultyService) http.Handler {
	return newTestRouter(t, &service.Services{WalkDifficultyService: difficulties})
}

func TestWalkDifficulties_CRUD(t *testing.T) {
	saved := map[uuid.UUID]models.WalkDifficulty{}
	router := difficultiesRouter(t, &mockWalkDifficultyService{
		getAllFn: func(ctx context.Context) ([]models.WalkDifficulty, error) {
			out := make([]models.WalkDifficulty, 0, len(saved))
			for _, d := range saved {
				out = append(out, d)
			}
			return out, nil
		},
		getFn: func(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
			d, ok := saved[id]
			if !ok {
				return models.WalkDifficulty{}, store.ErrWalkDifficultyNotFound
			}
			return d, nil
		},
		addFn: func(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
			difficulty.ID = testDifficultyID
			saved[difficulty.ID] = difficulty
			return difficulty, nil
		},
		updateFn: func(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
			if _, ok := saved[id]; !ok {
				return models.WalkDifficulty{}, store.ErrWalkDifficultyNotFound
			}
			difficulty.ID = id
			saved[id] = difficulty
			return difficulty, nil
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
			d, ok := saved[id]
			if !ok {
				return models.WalkDifficulty{}, store.ErrWalkDifficultyNotFound
			}
			delete(saved, id)
			return d, nil
		},
	})
	path := "/WalkDifficulties/" + testDifficultyID.String()

	rr := serve(router, http.MethodPost, "/WalkDifficulties", `{"code":"Easy"}`, writerToken)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, path, rr.Header().Get("Location"))

	rr = serve(router, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"`+testDifficultyID.String()+`","code":"Easy"}`, rr.Body.String())

	rr = serve(router, http.MethodPut, path, `{"code":"Medium"}`, writerToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodGet, "/WalkDifficulties", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var all []dto.WalkDifficulty
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Equal(t, []dto.WalkDifficulty{{ID: testDifficultyID, Code: "Medium"}}, all)

	rr = serve(router, http.MethodDelete, path, "", writerToken)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = serve(router, http.MethodGet, path, "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAddWalkDifficulty_Validation(t *testing.T) {
	router := difficultiesRouter(t, &mockWalkDifficultyService{
		addFn: func(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
			verrs := validators.NewValidationErrors()
			verrs.Add(validators.FieldCode, "Code is required.")
			return models.WalkDifficulty{}, verrs
		},
	})

	rr := serve(router, http.MethodPost, "/WalkDifficulties", `{"code":""}`, writerToken)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var problem dto.ValidationProblem
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &problem))
	assert.Equal(t, map[string][]string{"Code": {"Code is required."}}, problem.Errors)
}

func TestDeleteWalkDifficulty_InUse(t *testing.T) {
	router := difficultiesRouter(t, &mockWalkDifficultyService{
		deleteFn: func(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
			return models.WalkDifficulty{}, store.ErrWalkDifficultyInUse
		},
	})

	rr := serve(router, http.MethodDelete, "/WalkDifficulties/"+testDifficultyID.String(), "", writerToken)

	assert.Equal(t, http.StatusConflict, rr.Code)
}
