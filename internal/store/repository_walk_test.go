// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	walkRowColumns       = []string{"id", "name", "length", "region_id", "walk_difficulty_id"}
	walkJoinedRowColumns = []string{
		"id", "name", "length", "region_id", "walk_difficulty_id",
		"id", "code", "name", "region_image_url",
		"id", "code",
	}
)

func testWalk() models.Walk {
	return models.Walk{
		ID:               uuid.New(),
		Name:             "Tongariro Alpine Crossing",
		Length:           19.4,
		RegionID:         uuid.New(),
		WalkDifficultyID: uuid.New(),
	}
}

func joinedWalkRow(rows *sqlmock.Rows, w models.Walk, regionCode, regionName, difficulty string) *sqlmock.Rows {
	return rows.AddRow(
		w.ID.String(), w.Name, w.Length, w.RegionID.String(), w.WalkDifficultyID.String(),
		w.RegionID.String(), regionCode, regionName, nil,
		w.WalkDifficultyID.String(), difficulty,
	)
}

func TestWalkRepository_GetAll(t *testing.T) {
	first, second := testWalk(), testWalk()

	t.Run("success loads references", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		rows := sqlmock.NewRows(walkJoinedRowColumns)
		joinedWalkRow(rows, first, "WGN", "Wellington", "Hard")
		joinedWalkRow(rows, second, "AKL", "Auckland", "Easy")
		mock.ExpectQuery("FROM walks w JOIN regions r").WillReturnRows(rows)

		got, err := repo.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, first.Length, got[0].Length)
		require.NotNil(t, got[0].Region)
		assert.Equal(t, models.Region{ID: first.RegionID, Code: "WGN", Name: "Wellington"}, *got[0].Region)
		require.NotNil(t, got[0].WalkDifficulty)
		assert.Equal(t, models.WalkDifficulty{ID: first.WalkDifficultyID, Code: "Hard"}, *got[0].WalkDifficulty)
		assert.Equal(t, "Easy", got[1].WalkDifficulty.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("FROM walks w").WillReturnError(errors.New("db down"))

		_, err := repo.GetAll(context.Background())
		assert.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalkRepository_Get(t *testing.T) {
	walk := testWalk()

	t.Run("found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("WHERE w.id = ").
			WithArgs(walk.ID).
			WillReturnRows(joinedWalkRow(sqlmock.NewRows(walkJoinedRowColumns), walk, "NTL", "Northland", "Medium"))

		got, err := repo.Get(context.Background(), walk.ID)
		require.NoError(t, err)
		assert.Equal(t, walk.Name, got.Name)
		assert.Equal(t, "NTL", got.Region.Code)
		assert.Equal(t, "Medium", got.WalkDifficulty.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("WHERE w.id = ").WillReturnRows(sqlmock.NewRows(walkJoinedRowColumns))

		_, err := repo.Get(context.Background(), walk.ID)
		assert.ErrorIs(t, err, ErrWalkNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalkRepository_Add(t *testing.T) {
	walk := testWalk()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO walks").
					WithArgs(walk.ID, walk.Name, walk.Length, walk.RegionID, walk.WalkDifficultyID).
					WillReturnRows(sqlmock.NewRows(walkRowColumns).
						AddRow(walk.ID.String(), walk.Name, walk.Length, walk.RegionID.String(), walk.WalkDifficultyID.String()))
			},
		},
		{
			name: "unknown region or difficulty",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO walks").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrInvalidReference,
		},
		{
			name: "unexpected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO walks").WillReturnError(pgError(pgerrcode.CheckViolation))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewWalkRepository(db, logger.Nop())
			tt.setup(mock)

			got, err := repo.Add(context.Background(), walk)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, walk, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWalkRepository_Update(t *testing.T) {
	walk := testWalk()

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("UPDATE walks SET").
			WithArgs(walk.Name, walk.Length, walk.RegionID, walk.WalkDifficultyID, walk.ID).
			WillReturnRows(sqlmock.NewRows(walkRowColumns).
				AddRow(walk.ID.String(), walk.Name, walk.Length, walk.RegionID.String(), walk.WalkDifficultyID.String()))

		got, err := repo.Update(context.Background(), walk.ID, walk)
		require.NoError(t, err)
		assert.Equal(t, walk, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("UPDATE walks SET").WillReturnRows(sqlmock.NewRows(walkRowColumns))

		_, err := repo.Update(context.Background(), walk.ID, walk)
		assert.ErrorIs(t, err, ErrWalkNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid reference", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("UPDATE walks SET").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.Update(context.Background(), walk.ID, walk)
		assert.ErrorIs(t, err, ErrInvalidReference)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalkRepository_Delete(t *testing.T) {
	walk := testWalk()

	t.Run("success returns removed walk", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("DELETE FROM walks").
			WithArgs(walk.ID).
			WillReturnRows(sqlmock.NewRows(walkRowColumns).
				AddRow(walk.ID.String(), walk.Name, walk.Length, walk.RegionID.String(), walk.WalkDifficultyID.String()))

		got, err := repo.Delete(context.Background(), walk.ID)
		require.NoError(t, err)
		assert.Equal(t, walk, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewWalkRepository(db, logger.Nop())

		mock.ExpectQuery("DELETE FROM walks").WillReturnRows(sqlmock.NewRows(walkRowColumns))

		_, err := repo.Delete(context.Background(), walk.ID)
		assert.ErrorIs(t, err, ErrWalkNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
