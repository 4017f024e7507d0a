// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package recommend implements personalized recommendations over the catalog.
//
// # Architecture
//
// The Engine holds a set of strategies implementing Algorithm, keyed by the
// strategy name carried in an action. The engine owns the concerns every
// strategy shares:
//
//   - Unknown users are never served.
//   - Premium-only strategies reject non-premium users.
//   - An empty strategy result becomes "{Label} cannot be applied!".
//
// Strategies live in the algorithms subpackage and only select titles.
//
// # Candidates
//
// A candidate is an unseen video: a catalog video absent from the user's
// history. Candidates are always visited in canonical title order (movies
// then shows, input order), which decides every tie.
//
// # Usage
//
//	engine := recommend.NewEngine(cat, logger)
//	algorithms.RegisterAll(engine)
//	line, err := engine.Recommend(ctx, models.StrategyStandard, recommend.Request{User: u})
//	if errors.Is(err, recommend.ErrNotApplicable) {
//	    line = err.Error()
//	}
package recommend
