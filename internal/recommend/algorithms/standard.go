// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package algorithms

import (
	"context"

	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
	"github.com/tomtom215/reelbase/internal/recommend"
)

// Standard recommends the first unseen video in title order.
// Available to every subscription.
type Standard struct {
	BaseAlgorithm
}

// NewStandard creates the standard strategy.
func NewStandard() *Standard {
	return &Standard{
		BaseAlgorithm: NewBaseAlgorithm(models.StrategyStandard, "StandardRecommendation", false),
	}
}

// Recommend returns the first candidate.
func (s *Standard) Recommend(_ context.Context, c *catalog.Catalog, req recommend.Request) (recommend.Result, error) {
	candidates := c.Unseen(req.User)
	if len(candidates) == 0 {
		return recommend.Result{}, nil
	}
	return single(candidates[0]), nil
}

// BestUnseen recommends the highest rated unseen video. The scan starts at
// the first candidate, so ties (including an all-zero field) go to the
// earliest title.
type BestUnseen struct {
	BaseAlgorithm
}

// NewBestUnseen creates the best-unseen strategy.
func NewBestUnseen() *BestUnseen {
	return &BestUnseen{
		BaseAlgorithm: NewBaseAlgorithm(models.StrategyBestUnseen, "BestRatedUnseenRecommendation", false),
	}
}

// Recommend returns the first candidate with the strictly highest rating.
func (b *BestUnseen) Recommend(_ context.Context, c *catalog.Catalog, req recommend.Request) (recommend.Result, error) {
	best := maxBy(c.Unseen(req.User), (*models.Video).Rating)
	if best == nil {
		return recommend.Result{}, nil
	}
	return single(best), nil
}
