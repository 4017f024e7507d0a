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

// Favorite recommends the unseen video favorited by the most users.
// Premium only. Videos nobody favorited are never recommended.
type Favorite struct {
	BaseAlgorithm
}

// NewFavorite creates the most-favorited strategy.
func NewFavorite() *Favorite {
	return &Favorite{
		BaseAlgorithm: NewBaseAlgorithm(models.StrategyFavorite, "FavoriteRecommendation", true),
	}
}

// Recommend returns the first candidate with the strictly highest favorite
// count.
func (f *Favorite) Recommend(_ context.Context, c *catalog.Catalog, req recommend.Request) (recommend.Result, error) {
	favorited := query.Filter(c.Unseen(req.User), func(v *models.Video) bool {
		return v.NumFavorites != 0
	})

	best := maxBy(favorited, func(v *models.Video) float64 { return float64(v.NumFavorites) })
	if best == nil {
		return recommend.Result{}, nil
	}
	return single(best), nil
}
