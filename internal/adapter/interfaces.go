// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport for the NZ Walks API.
//
// The primary abstraction is [APIAdapter]. The package ships an HTTP/REST
// implementation ([NewHTTPAPIAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
// Validation failures are returned as [*ValidationError].
package adapter

import (
	"context"

	"github.com/MKhiriev/nz-walks/models/dto"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines communication with the NZ Walks API. Implementations
// are responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type APIAdapter interface {
	// SetToken stores the bearer token attached to every subsequent
	// request. Login calls it on success.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login exchanges credentials for a bearer token, stores it via
	// SetToken and returns it.
	Login(ctx context.Context, request dto.LoginRequest) (string, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	ListWalks(ctx context.Context) ([]dto.Walk, error)
	GetWalk(ctx context.Context, id uuid.UUID) (dto.Walk, error)
	AddWalk(ctx context.Context, request dto.AddWalkRequest) (dto.Walk, error)
	UpdateWalk(ctx context.Context, id uuid.UUID, request dto.UpdateWalkRequest) (dto.Walk, error)
	DeleteWalk(ctx context.Context, id uuid.UUID) (dto.Walk, error)

	ListRegions(ctx context.Context) ([]dto.Region, error)
	AddRegion(ctx context.Context, request dto.AddRegionRequest) (dto.Region, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) (dto.Region, error)

	ListWalkDifficulties(ctx context.Context) ([]dto.WalkDifficulty, error)
	AddWalkDifficulty(ctx context.Context, request dto.AddWalkDifficultyRequest) (dto.WalkDifficulty, error)
}
