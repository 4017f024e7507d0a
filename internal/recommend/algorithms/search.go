// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package algorithms

import (
	"context"

	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
	"github.com/tomtom215/reelbase/internal/query"
	"github.com/tomtom215/reelbase/internal/recommend"
)

// Search lists every unseen video of the requested genre, ordered by
// rating then title, both ascending. Premium only.
type Search struct {
	BaseAlgorithm
}

// NewSearch creates the genre search strategy.
func NewSearch() *Search {
	return &Search{
		BaseAlgorithm: NewBaseAlgorithm(models.StrategySearch, "SearchRecommendation", true),
	}
}

// Recommend returns the full ordered list of matching candidates.
func (s *Search) Recommend(_ context.Context, c *catalog.Catalog, req recommend.Request) (recommend.Result, error) {
	matches := query.Filter(c.Unseen(req.User), func(v *models.Video) bool {
		return v.HasGenre(req.Genre)
	})
	if len(matches) == 0 {
		return recommend.Result{}, nil
	}

	titles := query.Rank(matches, func(v *models.Video) (float64, string) {
		return v.Rating(), v.Title
	}, models.SortAscending, len(matches))
	return recommend.Result{Titles: titles, List: true}, nil
}
