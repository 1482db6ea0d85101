// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/nz-walks/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router. Reads are public; writes require a bearer token
// carrying the writer role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if len(h.allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders: []string{"Location", "Authorization", traceIDHeader},
			MaxAge:         300,
		}))
	}

	writer := router.With(h.auth, h.requireRole(models.RoleWriter))

	router.Get("/version", h.getServerVersion)
	router.Post("/Authentication/login", h.login)

	router.Get("/Walks", h.getAllWalks)
	router.Get("/Walks/{id}", h.getWalk)
	writer.Post("/Walks", h.addWalk)
	writer.Put("/Walks/{id}", h.updateWalk)
	writer.Delete("/Walks/{id}", h.deleteWalk)

	router.Get("/Regions", h.getAllRegions)
	router.Get("/Regions/{id}", h.getRegion)
	writer.Post("/Regions", h.addRegion)
	writer.Put("/Regions/{id}", h.updateRegion)
	writer.Delete("/Regions/{id}", h.deleteRegion)

	router.Get("/WalkDifficulties", h.getAllWalkDifficulties)
	router.Get("/WalkDifficulties/{id}", h.getWalkDifficulty)
	writer.Post("/WalkDifficulties", h.addWalkDifficulty)
	writer.Put("/WalkDifficulties/{id}", h.updateWalkDifficulty)
	writer.Delete("/WalkDifficulties/{id}", h.deleteWalkDifficulty)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
