// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/utils"
	"github.com/MKhiriev/nz-walks/models/dto"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	loginPath            = "/Authentication/login"
	versionPath          = "/version"
	walksPath            = "/Walks"
	regionsPath          = "/Regions"
	walkDifficultiesPath = "/WalkDifficulties"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs an HTTP/REST implementation of [APIAdapter].
// It normalises and validates adapterCfg.BaseURL and configures the
// underlying HTTP client with the resolved base URL and request timeout. A
// token in adapterCfg is used until Login replaces it.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	a := &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyBaseURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [APIAdapter]. It POSTs the credentials to
// POST /Authentication/login. The token is read from the response body and
// falls back to the Authorization response header.
func (h *httpAPIAdapter) Login(ctx context.Context, request dto.LoginRequest) (string, error) {
	var response dto.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post(loginPath)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := response.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", request.Username).Msg("logged in")
	return token, nil
}

func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAPIAdapter) ListWalks(ctx context.Context) ([]dto.Walk, error) {
	return send[[]dto.Walk](h.request(ctx), http.MethodGet, walksPath, "list walks")
}

func (h *httpAPIAdapter) GetWalk(ctx context.Context, id uuid.UUID) (dto.Walk, error) {
	return send[dto.Walk](h.request(ctx), http.MethodGet, itemPath(walksPath, id), "get walk")
}

func (h *httpAPIAdapter) AddWalk(ctx context.Context, request dto.AddWalkRequest) (dto.Walk, error) {
	return send[dto.Walk](h.request(ctx).SetBody(request), http.MethodPost, walksPath, "add walk")
}

func (h *httpAPIAdapter) UpdateWalk(ctx context.Context, id uuid.UUID, request dto.UpdateWalkRequest) (dto.Walk, error) {
	return send[dto.Walk](h.request(ctx).SetBody(request), http.MethodPut, itemPath(walksPath, id), "update walk")
}

func (h *httpAPIAdapter) DeleteWalk(ctx context.Context, id uuid.UUID) (dto.Walk, error) {
	return send[dto.Walk](h.request(ctx), http.MethodDelete, itemPath(walksPath, id), "delete walk")
}

func (h *httpAPIAdapter) ListRegions(ctx context.Context) ([]dto.Region, error) {
	return send[[]dto.Region](h.request(ctx), http.MethodGet, regionsPath, "list regions")
}

func (h *httpAPIAdapter) AddRegion(ctx context.Context, request dto.AddRegionRequest) (dto.Region, error) {
	return send[dto.Region](h.request(ctx).SetBody(request), http.MethodPost, regionsPath, "add region")
}

func (h *httpAPIAdapter) DeleteRegion(ctx context.Context, id uuid.UUID) (dto.Region, error) {
	return send[dto.Region](h.request(ctx), http.MethodDelete, itemPath(regionsPath, id), "delete region")
}

func (h *httpAPIAdapter) ListWalkDifficulties(ctx context.Context) ([]dto.WalkDifficulty, error) {
	return send[[]dto.WalkDifficulty](h.request(ctx), http.MethodGet, walkDifficultiesPath, "list walk difficulties")
}

func (h *httpAPIAdapter) AddWalkDifficulty(ctx context.Context, request dto.AddWalkDifficultyRequest) (dto.WalkDifficulty, error) {
	return send[dto.WalkDifficulty](h.request(ctx).SetBody(request), http.MethodPost, walkDifficultiesPath, "add walk difficulty")
}

// request prepares a JSON request carrying the stored token, if any.
func (h *httpAPIAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// send executes req and decodes a 2xx JSON body into T. op names the
// operation in wrapped errors.
func send[T any](req *resty.Request, method, path, op string) (T, error) {
	var result T

	resp, err := req.SetResult(&result).Execute(method, path)
	if err != nil {
		return result, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func itemPath(collection string, id uuid.UUID) string {
	return collection + "/" + id.String()
}
