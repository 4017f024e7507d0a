// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance and user-friendly error messages keyed by the
// JSON path of the offending field.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - JSON field names in every error, so paths match the input document
//   - Error translation to human-readable messages
//   - An Add method for checks that struct tags cannot express
//
// # Quick Start
//
//	type userInput struct {
//	    Username     string `json:"username" validate:"required"`
//	    Subscription string `json:"subscription_type" validate:"oneof=BASIC STANDARD PREMIUM"`
//	}
//
//	verr := validation.ValidateStruct(&doc)
//	if verr == nil {
//	    verr = &validation.StructValidationError{}
//	}
//	if seen[title] {
//	    verr.Add("movies[3].title", "unique", "duplicates an earlier title")
//	}
//	if !verr.Empty() {
//	    return verr
//	}
//
// # Error Messages
//
//	required       movies[0].title is required
//	oneof          users[1].subscription_type must be one of: BASIC STANDARD PREMIUM
//	gte            shows[0].seasons[2].duration must be greater than or equal to 0
//	min (string)   username must be at least 3 characters
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use.
package validation
