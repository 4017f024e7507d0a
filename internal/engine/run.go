// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/reelbase/internal/logging"
	"github.com/tomtom215/reelbase/internal/metrics"
	"github.com/tomtom215/reelbase/internal/models"
)

// RunStats summarizes a run.
type RunStats struct {
	RunID     string
	Actions   int
	ByType    map[string]int
	ByOutcome map[string]int
	CacheHits int64
	Duration  time.Duration
}

func newRunStats(runID string) *RunStats {
	return &RunStats{
		RunID:     runID,
		ByType:    make(map[string]int),
		ByOutcome: make(map[string]int),
	}
}

// Run evaluates actions in order and writes each result to sink. It stops
// at the first cancelled context or sink failure and returns the stats
// gathered so far together with the error.
func (e *Engine) Run(ctx context.Context, actions []models.Action, sink Sink) (*RunStats, error) {
	if logging.RunIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewRunID(ctx)
	}
	ctx = logging.ContextWithLogger(ctx, e.logger)
	logger := logging.Ctx(ctx)

	stats := newRunStats(logging.RunIDFromContext(ctx))
	hitsBefore := e.CacheStats().Hits
	start := time.Now()

	logger.Info().Int("actions", len(actions)).Msg("Run started")

	err := e.run(ctx, actions, sink, stats)

	stats.Duration = time.Since(start)
	stats.CacheHits = e.CacheStats().Hits - hitsBefore
	metrics.RecordRun(stats.Duration, err)

	if err != nil {
		logger.Error().Err(err).Int("completed", stats.Actions).Msg("Run aborted")
		return stats, err
	}
	logger.Info().
		Int("actions", stats.Actions).
		Int64("cache_hits", stats.CacheHits).
		Dur("duration", stats.Duration).
		Msg("Run finished")
	return stats, nil
}

func (e *Engine) run(ctx context.Context, actions []models.Action, sink Sink, stats *RunStats) error {
	logger := logging.Ctx(ctx)

	for i := range actions {
		action := actions[i]
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run cancelled before action %d: %w", action.ID, err)
		}

		start := time.Now()
		out, err := e.execute(ctx, action)
		elapsed := time.Since(start)
		if err != nil {
			return fmt.Errorf("action %d: %w", action.ID, err)
		}

		metrics.RecordAction(string(action.Type), kindOf(action), out.label, elapsed)
		logger.Debug().
			Int("action_id", action.ID).
			Str("action", action.Label()).
			Str("outcome", out.label).
			Dur("latency", elapsed).
			Msg("Action evaluated")

		if err := sink.Write(ctx, action.ID, out.message); err != nil {
			return fmt.Errorf("write result for action %d: %w", action.ID, err)
		}

		stats.Actions++
		stats.ByType[string(action.Type)]++
		stats.ByOutcome[out.label]++
	}
	return nil
}
