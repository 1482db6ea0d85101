// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/nz-walks/internal/adapter"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/mock"
	"github.com/MKhiriev/nz-walks/models/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	walkID       = uuid.MustParse("0190a4b2-0000-7000-8000-000000000001")
	regionID     = uuid.MustParse("0190a4b2-0000-7000-8000-000000000002")
	difficultyID = uuid.MustParse("0190a4b2-0000-7000-8000-000000000003")
)

func newTestApp(t *testing.T) (*App, *mock.MockAPIAdapter, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIAdapter(ctrl)
	var out bytes.Buffer
	return NewApp(api, &out, logger.Nop()), api, &out
}

func TestRun_Version(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Version(gomock.Any()).Return("v1.2.3", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "v1.2.3\n", out.String())
}

func TestRun_Login(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().
		Login(gomock.Any(), dto.LoginRequest{Username: "writer", Password: "Writer@123"}).
		Return("signed.token", nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "writer", "Writer@123"}))
	assert.Equal(t, "signed.token\n", out.String())
}

func TestRun_WalksList(t *testing.T) {
	app, api, out := newTestApp(t)
	walks := []dto.Walk{{ID: walkID, Name: "Crossing", Length: 19.4, RegionID: regionID, WalkDifficultyID: difficultyID}}
	api.EXPECT().ListWalks(gomock.Any()).Return(walks, nil)

	require.NoError(t, app.Run(context.Background(), []string{"walks", "list"}))

	var got []dto.Walk
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, walks, got)
}

func TestRun_WalksAdd(t *testing.T) {
	app, api, _ := newTestApp(t)
	api.EXPECT().
		AddWalk(gomock.Any(), dto.AddWalkRequest{Name: "Crossing", Length: 19.4, RegionID: regionID, WalkDifficultyID: difficultyID}).
		Return(dto.Walk{ID: walkID}, nil)

	err := app.Run(context.Background(), []string{"walks", "add", "Crossing", "19.4", regionID.String(), difficultyID.String()})

	require.NoError(t, err)
}

func TestRun_WalksUpdateAndDelete(t *testing.T) {
	app, api, _ := newTestApp(t)
	gomock.InOrder(
		api.EXPECT().
			UpdateWalk(gomock.Any(), walkID, dto.UpdateWalkRequest{Name: "Loop", Length: 3, RegionID: regionID, WalkDifficultyID: difficultyID}).
			Return(dto.Walk{ID: walkID}, nil),
		api.EXPECT().DeleteWalk(gomock.Any(), walkID).Return(dto.Walk{ID: walkID}, nil),
	)

	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"walks", "update", walkID.String(), "Loop", "3", regionID.String(), difficultyID.String()}))
	require.NoError(t, app.Run(ctx, []string{"walks", "delete", walkID.String()}))
}

func TestRun_RegionsAndDifficulties(t *testing.T) {
	app, api, _ := newTestApp(t)
	image := "https://example.org/akl.png"
	api.EXPECT().ListRegions(gomock.Any()).Return([]dto.Region{}, nil)
	api.EXPECT().AddRegion(gomock.Any(), dto.AddRegionRequest{Code: "AKL", Name: "Auckland"}).Return(dto.Region{}, nil)
	api.EXPECT().AddRegion(gomock.Any(), dto.AddRegionRequest{Code: "NSN", Name: "Nelson", RegionImageURL: &image}).Return(dto.Region{}, nil)
	api.EXPECT().DeleteRegion(gomock.Any(), regionID).Return(dto.Region{}, nil)
	api.EXPECT().ListWalkDifficulties(gomock.Any()).Return([]dto.WalkDifficulty{}, nil)
	api.EXPECT().AddWalkDifficulty(gomock.Any(), dto.AddWalkDifficultyRequest{Code: "Easy"}).Return(dto.WalkDifficulty{}, nil)

	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"regions", "list"}))
	require.NoError(t, app.Run(ctx, []string{"regions", "add", "AKL", "Auckland"}))
	require.NoError(t, app.Run(ctx, []string{"regions", "add", "NSN", "Nelson", image}))
	require.NoError(t, app.Run(ctx, []string{"regions", "delete", regionID.String()}))
	require.NoError(t, app.Run(ctx, []string{"difficulties", "list"}))
	require.NoError(t, app.Run(ctx, []string{"walk-difficulties", "add", "Easy"}))
}

func TestRun_BadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "walk id is not a uuid", args: []string{"walks", "get", "42"}, wantErr: ErrInvalidID},
		{name: "length is not a number", args: []string{"walks", "add", "x", "long", regionID.String(), difficultyID.String()}, wantErr: ErrInvalidLength},
		{name: "region id is not a uuid", args: []string{"walks", "add", "x", "1", "nope", difficultyID.String()}, wantErr: ErrInvalidID},
		{name: "missing arguments", args: []string{"login", "writer"}},
		{name: "unknown command", args: []string{"trails"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRun_APIErrorIsReturned(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().GetWalk(gomock.Any(), walkID).Return(dto.Walk{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"walks", "get", walkID.String()})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}
