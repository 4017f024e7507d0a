// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package main is the entry point for the Reelbase batch evaluator.
//
// Reelbase loads a media catalog and an ordered action list from a JSON
// dataset, replays the actions, and writes one result record per action to
// a JSON results file.
//
// # Startup Order
//
//  1. Configuration: defaults, config file, environment (Koanf v2)
//  2. Logging: zerolog initialized from the logging section
//  3. Dataset: decoded and validated; every field error is reported
//  4. Catalog: built once from the dataset
//  5. Engine: actions replayed into the results writer
//  6. Metrics: Prometheus textfile written when enabled
//
// # Usage
//
//	reelbase [dataset.json [results.json]]
//
// Positional arguments override DATASET_PATH and OUTPUT_PATH.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the run between actions. No results file is
// written for a cancelled run.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/config"
	"github.com/tomtom215/reelbase/internal/dataset"
	"github.com/tomtom215/reelbase/internal/engine"
	"github.com/tomtom215/reelbase/internal/logging"
	"github.com/tomtom215/reelbase/internal/metrics"
	"github.com/tomtom215/reelbase/internal/results"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	cfg.ApplyArgs(os.Args[1:])

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logging.Info().Str("dataset", cfg.Dataset.Path).Msg("Reelbase starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()

	if err != nil {
		logging.Err(err).Msg("Reelbase failed")
		os.Exit(1)
	}
}

// run executes one batch: load, evaluate, write.
func run(ctx context.Context, cfg *config.Config) error {
	start := time.Now()
	ctx = logging.ContextWithNewRunID(ctx)
	logger := logging.Ctx(ctx)

	logger.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("output", cfg.Output.Path).
		Bool("cache_enabled", cfg.Engine.CacheEnabled).
		Msg("Configuration loaded")

	doc, err := dataset.Load(ctx, cfg.Dataset.Path)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	cat := catalog.New(doc.Source())
	size := cat.Stats()
	metrics.SetCatalogSize(size.Actors, size.Movies, size.Shows, size.Users)
	logger.Info().
		Int("actors", size.Actors).
		Int("movies", size.Movies).
		Int("shows", size.Shows).
		Int("users", size.Users).
		Msg("Catalog built")

	eng := engine.New(cat, engine.Config{
		CacheEnabled:  cfg.Engine.CacheEnabled,
		CacheCapacity: cfg.Engine.CacheCapacity,
		CacheTTL:      cfg.Engine.CacheTTL,
	}, logging.Logger())

	sink := results.NewJSONWriter(cfg.Output.Path, cfg.Output.Indent)
	stats, runErr := eng.Run(ctx, doc.ActionList(), sink)
	if runErr == nil {
		runErr = sink.Close()
	}

	// Metrics describe failed runs too.
	if err := writeMetrics(cfg); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if runErr != nil {
		return runErr
	}

	logger.Info().
		Int("actions", stats.Actions).
		Interface("by_type", stats.ByType).
		Interface("by_outcome", stats.ByOutcome).
		Int64("cache_hits", stats.CacheHits).
		Dur("elapsed", time.Since(start)).
		Str("output", sink.Path()).
		Msg("Results written")
	return nil
}

func writeMetrics(cfg *config.Config) error {
	if !cfg.Metrics.Enabled {
		return nil
	}
	if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}
