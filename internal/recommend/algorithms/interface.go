// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package algorithms

import (
	"github.com/tomtom215/reelbase/internal/models"
	"github.com/tomtom215/reelbase/internal/recommend"
)

// BaseAlgorithm provides the identity shared by all strategies.
type BaseAlgorithm struct {
	name    string
	label   string
	premium bool
}

// NewBaseAlgorithm creates a base with the strategy key, result label and
// subscription requirement.
func NewBaseAlgorithm(name, label string, premium bool) BaseAlgorithm {
	return BaseAlgorithm{
		name:    name,
		label:   label,
		premium: premium,
	}
}

// Name returns the strategy key.
func (b *BaseAlgorithm) Name() string {
	return b.name
}

// Label returns the result label.
func (b *BaseAlgorithm) Label() string {
	return b.label
}

// PremiumOnly reports whether the strategy requires a premium subscription.
func (b *BaseAlgorithm) PremiumOnly() bool {
	return b.premium
}

// RegisterAll registers every built-in strategy with the engine.
func RegisterAll(e *recommend.Engine) {
	e.RegisterAlgorithm(NewStandard())
	e.RegisterAlgorithm(NewBestUnseen())
	e.RegisterAlgorithm(NewPopular())
	e.RegisterAlgorithm(NewFavorite())
	e.RegisterAlgorithm(NewSearch())
}

// single wraps one title as a single-title result.
func single(v *models.Video) recommend.Result {
	return recommend.Result{Titles: []string{v.Title}}
}

// maxBy returns the first video with the strictly greatest metric, or nil
// for an empty slice.
func maxBy(videos []*models.Video, metric func(*models.Video) float64) *models.Video {
	var best *models.Video
	var bestValue float64
	for _, v := range videos {
		if value := metric(v); best == nil || value > bestValue {
			best, bestValue = v, value
		}
	}
	return best
}
