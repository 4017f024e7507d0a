// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package logging provides centralized zerolog-based structured logging for Reelbase.
//
// JSON output is the default; console output is available for local runs.
// Logs go to stderr so they never mix with the results file.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("dataset", path).Msg("Dataset loaded")
//	logging.Err(err).Msg("Run failed")
//
// # Run IDs
//
// Each engine run carries a short run ID in its context. Ctx attaches it
// to every line logged through the context:
//
//	ctx = logging.ContextWithNewRunID(ctx)
//	logging.Ctx(ctx).Info().Int("actions", n).Msg("Run started")
//
// # Configuration
//
// The level, format, and caller flag come from the logging section of the
// application config (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
