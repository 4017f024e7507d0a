// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package algorithms implements the recommendation strategies.
//
// Each strategy implements the recommend.Algorithm interface and is
// registered with the recommendation engine, usually through RegisterAll.
//
// # Strategies
//
//   - standard: first unseen video
//   - best_unseen: highest rated unseen video
//   - popular: first unseen video of the most viewed genre (premium)
//   - favorite: most favorited unseen video (premium)
//   - search: all unseen videos of a genre by rating (premium)
//
// Strategies only select titles. Subscription gating and the
// "cannot be applied" line are handled by the engine.
package algorithms
