// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Action outcome label values.
const (
	OutcomeSuccess       = "success"
	OutcomeError         = "error"
	OutcomeEmpty         = "empty"
	OutcomeNotApplicable = "not_applicable"
	OutcomeUnsupported   = "unsupported"
)

// Run status label values.
const (
	RunCompleted = "completed"
	RunFailed    = "failed"
)

var (
	// Action Metrics
	ActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelbase_actions_total",
			Help: "Total number of evaluated actions by type, kind and outcome",
		},
		[]string{"action_type", "kind", "outcome"}, // kind: command kind, strategy or query object type
	)

	ActionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelbase_action_duration_seconds",
			Help:    "Duration of a single action evaluation in seconds",
			Buckets: []float64{.00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
		[]string{"action_type"},
	)

	// Result Cache Metrics
	ResultCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelbase_result_cache_hits_total",
			Help: "Total number of read-only actions served from the result cache",
		},
	)

	ResultCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelbase_result_cache_misses_total",
			Help: "Total number of read-only actions evaluated against the catalog",
		},
	)

	ResultCachePurges = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reelbase_result_cache_purges_total",
			Help: "Total number of result cache purges caused by commands",
		},
	)

	// Catalog Metrics
	CatalogEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reelbase_catalog_entities",
			Help: "Number of catalog entities by collection",
		},
		[]string{"collection"}, // "actors", "movies", "shows", "users"
	)

	// Run Metrics
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelbase_runs_total",
			Help: "Total number of engine runs by status",
		},
		[]string{"status"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reelbase_run_duration_seconds",
			Help:    "Duration of a full engine run in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordAction records one evaluated action.
func RecordAction(actionType, kind, outcome string, duration time.Duration) {
	ActionsTotal.WithLabelValues(actionType, kind, outcome).Inc()
	ActionDuration.WithLabelValues(actionType).Observe(duration.Seconds())
}

// RecordCacheHit records a result cache hit.
func RecordCacheHit() {
	ResultCacheHits.Inc()
}

// RecordCacheMiss records a result cache miss.
func RecordCacheMiss() {
	ResultCacheMisses.Inc()
}

// RecordCachePurge records a result cache purge.
func RecordCachePurge() {
	ResultCachePurges.Inc()
}

// SetCatalogSize publishes the size of each catalog collection.
func SetCatalogSize(actors, movies, shows, users int) {
	CatalogEntities.WithLabelValues("actors").Set(float64(actors))
	CatalogEntities.WithLabelValues("movies").Set(float64(movies))
	CatalogEntities.WithLabelValues("shows").Set(float64(shows))
	CatalogEntities.WithLabelValues("users").Set(float64(users))
}

// RecordRun records a finished engine run.
func RecordRun(duration time.Duration, err error) {
	status := RunCompleted
	if err != nil {
		status = RunFailed
	}
	RunsTotal.WithLabelValues(status).Inc()
	RunDuration.Observe(duration.Seconds())
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text format, for collection by the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
