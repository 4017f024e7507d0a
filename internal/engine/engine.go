// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelbase/internal/cache"
	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/command"
	"github.com/tomtom215/reelbase/internal/metrics"
	"github.com/tomtom215/reelbase/internal/models"
	"github.com/tomtom215/reelbase/internal/query"
	"github.com/tomtom215/reelbase/internal/recommend"
	"github.com/tomtom215/reelbase/internal/recommend/algorithms"
)

// ErrUnsupportedAction is reported for an action type the engine does not know.
var ErrUnsupportedAction = errors.New("unsupported action type")

// Sink receives one result line per action, in action order.
type Sink interface {
	Write(ctx context.Context, id int, message string) error
}

// Config tunes the engine.
type Config struct {
	// CacheEnabled memoizes read-only results between commands.
	CacheEnabled bool

	// CacheCapacity bounds the result cache. Non-positive values use
	// cache.DefaultCapacity.
	CacheCapacity int

	// CacheTTL expires cached results. Zero keeps them until the next
	// command.
	CacheTTL time.Duration
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		CacheEnabled:  true,
		CacheCapacity: cache.DefaultCapacity,
	}
}

// outcome is a cached or freshly computed result line.
type outcome struct {
	message string
	label   string
}

// Engine dispatches actions to the command, query and recommendation
// evaluators. It is not safe for concurrent use.
type Engine struct {
	catalog     *catalog.Catalog
	commands    *command.Evaluator
	queries     *query.Evaluator
	recommender *recommend.Engine
	results     *cache.LRU[outcome]
	logger      zerolog.Logger
}

// New creates an engine over the catalog with every built-in
// recommendation strategy registered.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(c *catalog.Catalog, cfg Config, logger zerolog.Logger) *Engine {
	rec := recommend.NewEngine(c, logger)
	algorithms.RegisterAll(rec)

	e := &Engine{
		catalog:     c,
		commands:    command.NewEvaluator(c, logger),
		queries:     query.NewEvaluator(c),
		recommender: rec,
		logger:      logger.With().Str("component", "engine").Logger(),
	}
	if cfg.CacheEnabled {
		capacity := cfg.CacheCapacity
		if capacity <= 0 {
			capacity = cache.DefaultCapacity
		}
		e.results = cache.NewLRU[outcome](capacity, cfg.CacheTTL)
	}
	return e
}

// Execute evaluates a single action and returns its result line. The error
// is non-nil only for infrastructure failures; rejected commands and
// inapplicable recommendations are returned as lines.
//
//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Engine) Execute(ctx context.Context, action models.Action) (string, error) {
	out, err := e.execute(ctx, action)
	return out.message, err
}

//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Engine) execute(ctx context.Context, action models.Action) (outcome, error) {
	if !action.ReadOnly() {
		out := e.command(action)
		e.purge()
		return out, nil
	}

	key, cacheable := e.cacheKey(action)
	if cacheable {
		if out, ok := e.results.Get(key); ok {
			metrics.RecordCacheHit()
			return out, nil
		}
		metrics.RecordCacheMiss()
	}

	var (
		out outcome
		err error
	)
	switch action.Type {
	case models.ActionQuery:
		out = e.query(action)
	case models.ActionRecommendation:
		out, err = e.recommend(ctx, action)
	default:
		out = unsupported(fmt.Errorf("%w: %q", ErrUnsupportedAction, action.Type))
	}
	if err != nil {
		return outcome{}, err
	}

	if cacheable {
		e.results.Add(key, out)
	}
	return out, nil
}

//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Engine) command(action models.Action) outcome {
	msg, err := e.commands.Execute(action)
	switch {
	case err == nil:
		return outcome{message: msg, label: metrics.OutcomeSuccess}
	case errors.Is(err, command.ErrUnsupported):
		return outcome{message: err.Error(), label: metrics.OutcomeUnsupported}
	default:
		return outcome{message: err.Error(), label: metrics.OutcomeError}
	}
}

//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Engine) query(action models.Action) outcome {
	res, err := e.queries.Evaluate(action)
	if err != nil {
		return unsupported(err)
	}
	label := metrics.OutcomeSuccess
	if res.Empty() {
		label = metrics.OutcomeEmpty
	}
	return outcome{message: res.String(), label: label}
}

//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Engine) recommend(ctx context.Context, action models.Action) (outcome, error) {
	req := recommend.Request{Genre: action.Genre}
	if user, ok := e.catalog.User(action.Username); ok {
		req.User = user
	}

	msg, err := e.recommender.Recommend(ctx, action.Kind, req)
	var notApplicable *recommend.NotApplicableError
	switch {
	case err == nil:
		return outcome{message: msg, label: metrics.OutcomeSuccess}, nil
	case errors.As(err, &notApplicable):
		return outcome{message: notApplicable.Error(), label: metrics.OutcomeNotApplicable}, nil
	case errors.Is(err, recommend.ErrUnknownStrategy):
		return unsupported(err), nil
	default:
		return outcome{}, fmt.Errorf("recommend %s for %s: %w", action.Kind, action.Username, err)
	}
}

func unsupported(err error) outcome {
	return outcome{message: "error -> " + err.Error(), label: metrics.OutcomeUnsupported}
}

// cacheKey encodes the action without its ID. Encoding failures disable
// caching for that action.
//
//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Engine) cacheKey(action models.Action) (string, bool) {
	if e.results == nil {
		return "", false
	}
	data, err := json.Marshal(action)
	if err != nil {
		e.logger.Debug().Err(err).Int("action_id", action.ID).Msg("action not cacheable")
		return "", false
	}
	return string(data), true
}

func (e *Engine) purge() {
	if e.results == nil {
		return
	}
	if n := e.results.Purge(); n > 0 {
		metrics.RecordCachePurge()
	}
}

// CacheStats returns result cache statistics. The zero value is returned
// when the cache is disabled.
func (e *Engine) CacheStats() cache.Stats {
	if e.results == nil {
		return cache.Stats{}
	}
	return e.results.Stats()
}

// kindOf returns the metrics kind label of an action.
//
//nolint:gocritic // hugeParam: action passed by value for immutability
func kindOf(action models.Action) string {
	if action.Type == models.ActionQuery {
		return string(action.ObjectType)
	}
	return action.Kind
}
