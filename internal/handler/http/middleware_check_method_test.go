// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func okHandler(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

// buildRouter mirrors the shape of the API routes.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/Things", okHandler)
	router.Post("/Things", okHandler)
	router.Get("/Things/{id}", okHandler)
	router.Put("/Things/{id}", okHandler)
	router.Delete("/Things/{id}", okHandler)
	router.Post("/login", okHandler)
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "GET collection passes", method: http.MethodGet, path: "/Things", wantStatus: http.StatusOK},
		{name: "DELETE item passes", method: http.MethodDelete, path: "/Things/1", wantStatus: http.StatusOK},
		{name: "PUT collection", method: http.MethodPut, path: "/Things", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, POST"},
		{name: "PATCH item", method: http.MethodPatch, path: "/Things/1", wantStatus: http.StatusMethodNotAllowed, wantAllow: "GET, PUT, DELETE"},
		{name: "GET login", method: http.MethodGet, path: "/login", wantStatus: http.StatusMethodNotAllowed, wantAllow: "POST"},
		{name: "unknown path is 404", method: http.MethodGet, path: "/nothing", wantStatus: http.StatusNotFound},
	}

	router := buildRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			if tt.wantStatus == http.StatusMethodNotAllowed {
				assert.Equal(t, http.StatusText(http.StatusMethodNotAllowed)+"\n", rr.Body.String())
			}
		})
	}
}
