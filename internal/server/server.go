// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/nz-walks/internal/config"
	"github.com/MKhiriev/nz-walks/internal/handler"
	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers

	stopWorkers context.CancelFunc
	workersDone sync.WaitGroup
	logger      *logger.Logger
}

// NewServer builds the transport servers enabled in cfg. bg may be nil; when
// set, its workers run for the lifetime of the server.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: bg, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}

	if s.stopWorkers != nil {
		s.stopWorkers()
	}
	s.workersDone.Wait()
}

// run serves until ctx is cancelled, then shuts every server down.
func (s *server) run(ctx context.Context) error {
	if err := s.start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	s.logger.Info().Msg("stop signal received")

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

// start binds the listeners and launches every server and worker. Workers
// stop when ctx is done or on Shutdown.
func (s *server) start(ctx context.Context) error {
	// check if any server was created
	if s.httpServer == nil && s.gRPCServer == nil {
		return errors.New("no servers to run")
	}

	if s.httpServer != nil {
		if err := s.httpServer.listen(); err != nil {
			return fmt.Errorf("%w: %w", errListening, err)
		}
	}
	if s.gRPCServer != nil {
		if err := s.gRPCServer.listen(); err != nil {
			if s.httpServer != nil {
				s.httpServer.closeListener()
			}
			return fmt.Errorf("%w: %w", errListening, err)
		}
	}

	// launch all created servers
	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.addr()).Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.addr()).Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	if s.workers != nil {
		ctx, s.stopWorkers = context.WithCancel(ctx)
		s.workersDone.Add(1)
		go func() {
			defer s.workersDone.Done()
			s.workers.Run(ctx)
		}()
	}

	return nil
}
