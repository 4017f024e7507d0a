// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package recommend

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
)

// ErrNotApplicable is returned when a strategy has no candidate for the user
// or the user's subscription does not allow the strategy.
var ErrNotApplicable = errors.New("recommendation not applicable")

// ErrUnknownStrategy is returned for a strategy with no registered algorithm.
var ErrUnknownStrategy = errors.New("unknown recommendation strategy")

// Request is the input to a recommendation strategy.
type Request struct {
	// User is the recipient. Nil means the username did not resolve.
	User *models.User

	// Genre is the genre searched by the search strategy.
	Genre string
}

// Result is the output of a strategy.
type Result struct {
	// Titles holds the recommended titles. Single-title strategies return
	// exactly one.
	Titles []string

	// List renders Titles as a bracketed list rather than a single title.
	List bool
}

// Empty reports whether the strategy found no candidate.
func (r Result) Empty() bool {
	return len(r.Titles) == 0
}

// Render formats the result line with the strategy label, e.g.
// "StandardRecommendation result: Alpha".
func (r Result) Render(label string) string {
	if r.List {
		return label + " result: [" + strings.Join(r.Titles, ", ") + "]"
	}
	return label + " result: " + r.Titles[0]
}

// Algorithm is one recommendation strategy.
type Algorithm interface {
	// Name returns the strategy key as it appears in actions, e.g. "standard".
	Name() string

	// Label returns the strategy name used in result lines,
	// e.g. "StandardRecommendation".
	Label() string

	// PremiumOnly reports whether only premium users may use the strategy.
	PremiumOnly() bool

	// Recommend selects titles for the requesting user. It returns an empty
	// Result when there is no candidate and must not mutate the catalog.
	Recommend(ctx context.Context, c *catalog.Catalog, req Request) (Result, error)
}

// NotApplicableError carries the exact "cannot be applied" line.
type NotApplicableError struct {
	Label string
}

// Error returns the result line, e.g. "StandardRecommendation cannot be applied!".
func (e *NotApplicableError) Error() string {
	return e.Label + " cannot be applied!"
}

// Unwrap lets errors.Is match ErrNotApplicable.
func (e *NotApplicableError) Unwrap() error {
	return ErrNotApplicable
}
