// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package recommend

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tomtom215/reelbase/internal/catalog"
)

// Engine routes recommendation requests to registered strategies and
// enforces subscription gating.
type Engine struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger

	algorithms map[string]Algorithm
	order      []string
}

// NewEngine creates a recommendation engine over the catalog. No strategy
// is registered yet.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(c *catalog.Catalog, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog:    c,
		logger:     logger.With().Str("component", "recommend").Logger(),
		algorithms: make(map[string]Algorithm),
	}
}

// RegisterAlgorithm adds a strategy. A later registration under the same
// name replaces the earlier one.
func (e *Engine) RegisterAlgorithm(alg Algorithm) {
	if _, exists := e.algorithms[alg.Name()]; !exists {
		e.order = append(e.order, alg.Name())
	}
	e.algorithms[alg.Name()] = alg

	e.logger.Debug().
		Str("algorithm", alg.Name()).
		Bool("premium_only", alg.PremiumOnly()).
		Msg("registered algorithm")
}

// Algorithms returns the registered strategy names in registration order.
func (e *Engine) Algorithms() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Recommend runs the named strategy and returns its result line.
//
// When the strategy cannot serve the request the returned error is a
// *NotApplicableError whose Error() is the result line. An unknown strategy
// yields ErrUnknownStrategy. The catalog is never mutated.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, strategy string, req Request) (string, error) {
	alg, ok := e.algorithms[strategy]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	notApplicable := &NotApplicableError{Label: alg.Label()}
	if req.User == nil {
		return "", notApplicable
	}
	if alg.PremiumOnly() && !req.User.IsPremium() {
		e.logger.Debug().
			Str("algorithm", strategy).
			Str("username", req.User.Username).
			Msg("strategy requires premium subscription")
		return "", notApplicable
	}

	res, err := alg.Recommend(ctx, e.catalog, req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", strategy, err)
	}
	if res.Empty() {
		return "", notApplicable
	}
	return res.Render(alg.Label()), nil
}
