// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/nz-walks/internal/logger"
	"github.com/MKhiriev/nz-walks/internal/store"
)

type healthProbe struct {
	checker  store.HealthChecker
	status   StatusSetter
	interval time.Duration

	logger *logger.Logger
}

// NewHealthProbe returns a worker that pings the store every interval and
// reports the result to status. Each ping is bounded by interval.
func NewHealthProbe(checker store.HealthChecker, status StatusSetter, interval time.Duration, logger *logger.Logger) Worker {
	return &healthProbe{
		checker:  checker,
		status:   status,
		interval: interval,
		logger:   logger,
	}
}

func (p *healthProbe) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("health probe started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	serving := p.probe(ctx, true)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("health probe stopped")
			return
		case <-ticker.C:
			serving = p.probe(ctx, serving)
		}
	}
}

// probe pings the store once and returns the new serving state. Transitions
// are logged.
func (p *healthProbe) probe(ctx context.Context, wasServing bool) bool {
	pingCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.checker.Ping(pingCtx)
	if ctx.Err() != nil {
		return wasServing
	}

	serving := err == nil
	p.status.SetServing(serving)

	switch {
	case !serving && wasServing:
		p.logger.Err(err).Msg("store stopped answering pings")
	case serving && !wasServing:
		p.logger.Info().Msg("store answers pings again")
	}

	return serving
}
