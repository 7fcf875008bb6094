// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RebuildEngine defines the interface the rebuild service needs from
// the recommendation engine. This avoids a direct package dependency.
type RebuildEngine interface {
	// Reload rebuilds the dataset from the database.
	Reload(ctx context.Context) error
}

// RebuildServiceConfig holds configuration for the rebuild service.
type RebuildServiceConfig struct {
	// RebuildOnStartup triggers a rebuild when the service starts.
	RebuildOnStartup bool

	// RebuildInterval is how often to rebuild the dataset.
	RebuildInterval time.Duration
}

// RebuildService periodically rebuilds the recommendation dataset so
// long-running deployments pick up sales written outside the API.
type RebuildService struct {
	engine RebuildEngine
	config RebuildServiceConfig
	logger zerolog.Logger
	name   string
}

// NewRebuildService creates a new rebuild service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRebuildService(engine RebuildEngine, cfg RebuildServiceConfig, logger zerolog.Logger) *RebuildService {
	return &RebuildService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "rebuild").Logger(),
		name:   "rebuild-service",
	}
}

// Serve implements the suture.Service interface. It manages the
// rebuild loop for the recommendation engine.
func (s *RebuildService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("rebuild_on_startup", s.config.RebuildOnStartup).
		Dur("rebuild_interval", s.config.RebuildInterval).
		Msg("rebuild service starting")

	if s.config.RebuildOnStartup {
		if err := s.rebuild(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial rebuild failed (will retry on schedule)")
		}
	}

	if s.config.RebuildInterval <= 0 {
		s.config.RebuildInterval = 15 * time.Minute
	}

	ticker := time.NewTicker(s.config.RebuildInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("rebuild service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled rebuild failed")
			}
		}
	}
}

// rebuild performs one rebuild cycle with a bounded context.
func (s *RebuildService) rebuild(ctx context.Context) error {
	rebuildCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := s.engine.Reload(rebuildCtx); err != nil {
		return err
	}

	s.logger.Debug().
		Dur("duration", time.Since(start)).
		Msg("dataset rebuild complete")

	return nil
}

// String returns the service name for logging.
func (s *RebuildService) String() string {
	return s.name
}
