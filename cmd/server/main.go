// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/handler"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/server"
	"github.com/MKhiriev/nz-walks/internal/service"
	"github.com/MKhiriev/nz-walks/internal/store"
	"github.com/MKhiriev/nz-walks/internal/workers"
	"github.com/MKhiriev/nz-walks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("nz-walks-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("dialect", cfg.Storage.DB.Dialect()).
		Dur("token_duration", cfg.App.TokenDuration).
		Int("seed_users", len(cfg.App.SeedUsers)).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, buildInfo, log)

	if err = services.AuthService.SeedUsers(ctx, cfg.App.SeedUsers); err != nil {
		log.Fatal().Err(err).Msg("error seeding users")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var bg *workers.Workers
	if handlers.GRPC != nil {
		bg = workers.NewWorkers(
			workers.NewHealthProbe(storages.DB, handlers.GRPC, cfg.Workers.HealthCheckInterval, log),
		)
	}

	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
