// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package algorithms

import (
	"cmp"
	"context"
	"slices"

	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
	"github.com/tomtom215/reelbase/internal/recommend"
)

// GenreViews is the total view count of one genre.
type GenreViews struct {
	Genre string
	Views int
}

// Popular recommends from the most viewed genres. Premium only.
//
// Genre popularity is the sum of view counts over every catalog video
// carrying the genre, seen or not. Genres are visited from most to least
// popular; the first unseen video in title order carrying the current
// genre wins.
type Popular struct {
	BaseAlgorithm
}

// NewPopular creates the popular-genre strategy.
func NewPopular() *Popular {
	return &Popular{
		BaseAlgorithm: NewBaseAlgorithm(models.StrategyPopular, "PopularRecommendation", true),
	}
}

// Recommend returns the first unseen video of the most popular genre that
// has one.
func (p *Popular) Recommend(_ context.Context, c *catalog.Catalog, req recommend.Request) (recommend.Result, error) {
	candidates := c.Unseen(req.User)
	if len(candidates) == 0 {
		return recommend.Result{}, nil
	}

	for _, g := range PopularGenres(c.Videos()) {
		for _, v := range candidates {
			if v.HasGenre(g.Genre) {
				return single(v), nil
			}
		}
	}
	return recommend.Result{}, nil
}

// PopularGenres sums views per genre and orders genres by views
// descending. Ties break on genre name ascending.
func PopularGenres(videos []*models.Video) []GenreViews {
	index := make(map[string]int)
	var genres []GenreViews
	for _, v := range videos {
		for _, g := range v.Genres {
			i, ok := index[g]
			if !ok {
				i = len(genres)
				index[g] = i
				genres = append(genres, GenreViews{Genre: g})
			}
			genres[i].Views += v.NumViews
		}
	}

	slices.SortStableFunc(genres, func(a, b GenreViews) int {
		if c := cmp.Compare(b.Views, a.Views); c != 0 {
			return c
		}
		return cmp.Compare(a.Genre, b.Genre)
	})
	return genres
}
