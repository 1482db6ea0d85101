// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/service"
	"github.com/MKhiriev/nz-walks/models"
	"github.com/google/uuid"
)

// ─── service fakes ──────────────────────────────────────────────────────────

type mockAuthService struct {
	authenticateFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
	seedUsersFn    func(ctx context.Context, users []config.SeedUser) error
}

func (m *mockAuthService) Authenticate(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.authenticateFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) SeedUsers(ctx context.Context, users []config.SeedUser) error {
	return m.seedUsersFn(ctx, users)
}

type mockWalkService struct {
	getAllFn func(ctx context.Context) ([]models.Walk, error)
	getFn    func(ctx context.Context, id uuid.UUID) (models.Walk, error)
	addFn    func(ctx context.Context, walk models.Walk) (models.Walk, error)
	updateFn func(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (models.Walk, error)
}

func (m *mockWalkService) GetAll(ctx context.Context) ([]models.Walk, error) {
	return m.getAllFn(ctx)
}

func (m *mockWalkService) Get(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	return m.getFn(ctx, id)
}

func (m *mockWalkService) Add(ctx context.Context, walk models.Walk) (models.Walk, error) {
	return m.addFn(ctx, walk)
}

func (m *mockWalkService) Update(ctx context.Context, id uuid.UUID, walk models.Walk) (models.Walk, error) {
	return m.updateFn(ctx, id, walk)
}

func (m *mockWalkService) Delete(ctx context.Context, id uuid.UUID) (models.Walk, error) {
	return m.deleteFn(ctx, id)
}

type mockRegionService struct {
	getAllFn func(ctx context.Context) ([]models.Region, error)
	getFn    func(ctx context.Context, id uuid.UUID) (models.Region, error)
	addFn    func(ctx context.Context, region models.Region) (models.Region, error)
	updateFn func(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (models.Region, error)
}

func (m *mockRegionService) GetAll(ctx context.Context) ([]models.Region, error) {
	return m.getAllFn(ctx)
}

func (m *mockRegionService) Get(ctx context.Context, id uuid.UUID) (models.Region, error) {
	return m.getFn(ctx, id)
}

func (m *mockRegionService) Add(ctx context.Context, region models.Region) (models.Region, error) {
	return m.addFn(ctx, region)
}

func (m *mockRegionService) Update(ctx context.Context, id uuid.UUID, region models.Region) (models.Region, error) {
	return m.updateFn(ctx, id, region)
}

func (m *mockRegionService) Delete(ctx context.Context, id uuid.UUID) (models.Region, error) {
	return m.deleteFn(ctx, id)
}

type mockWalkDifficultyService struct {
	getAllFn func(ctx context.Context) ([]models.WalkDifficulty, error)
	getFn    func(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
	addFn    func(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error)
	updateFn func(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error)
}

func (m *mockWalkDifficultyService) GetAll(ctx context.Context) ([]models.WalkDifficulty, error) {
	return m.getAllFn(ctx)
}

func (m *mockWalkDifficultyService) Get(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	return m.getFn(ctx, id)
}

func (m *mockWalkDifficultyService) Add(ctx context.Context, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	return m.addFn(ctx, difficulty)
}

func (m *mockWalkDifficultyService) Update(ctx context.Context, id uuid.UUID, difficulty models.WalkDifficulty) (models.WalkDifficulty, error) {
	return m.updateFn(ctx, id, difficulty)
}

func (m *mockWalkDifficultyService) Delete(ctx context.Context, id uuid.UUID) (models.WalkDifficulty, error) {
	return m.deleteFn(ctx, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─── helpers ────────────────────────────────────────────────────────────────

const (
	writerToken  = "writer-token"
	readerToken  = "reader-token"
	expiredToken = "expired-token"
)

var testUserID = uuid.MustParse("0190a4b2-7f3c-7d2e-9a1b-3c4d5e6f7a8b")

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// tokenParser resolves the fixed test tokens used across handler tests.
func tokenParser(_ context.Context, tokenString string) (models.Token, error) {
	switch tokenString {
	case writerToken:
		return models.Token{UserID: testUserID, Roles: []string{models.RoleReader, models.RoleWriter}}, nil
	case readerToken:
		return models.Token{UserID: testUserID, Roles: []string{models.RoleReader}}, nil
	case expiredToken:
		return models.Token{}, service.ErrTokenIsExpired
	default:
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// newTestRouter builds the full router over svcs. A nil AuthService is
// replaced by one that only understands the fixed test tokens.
func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{parseTokenFn: tokenParser}
	}
	return NewHandler(svcs, config.Server{}, logger.Nop()).Init()
}

// serve sends a request through router. An empty token sends no
// Authorization header.
func serve(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger attaches a nop logger the way withTraceID does.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}
