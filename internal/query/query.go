// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package query evaluates the read-only catalog queries.
//
// Every query filters one collection, ranks the survivors by a numeric
// criterion with a lexicographic tie-breaker, truncates to the requested
// count and renders "Query result: [...]". Rows whose criterion is zero
// are dropped before ranking.
package query

import (
	"errors"
	"fmt"

	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
)

// ErrUnsupported is returned for an unknown object type or criteria pair.
var ErrUnsupported = errors.New("unsupported query")

// Evaluator runs queries against a catalog. It never mutates state.
type Evaluator struct {
	catalog *catalog.Catalog
}

// NewEvaluator creates a query evaluator over the catalog.
func NewEvaluator(c *catalog.Catalog) *Evaluator {
	return &Evaluator{catalog: c}
}

// Evaluate routes a query action by object type and criteria.
//
//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Evaluator) Evaluate(action models.Action) (Result, error) {
	order, n := action.SortType, action.Number

	switch action.ObjectType {
	case models.ObjectActors:
		switch action.Criteria {
		case models.CriteriaAverage:
			return e.ActorsByAverage(order, n), nil
		case models.CriteriaAwards:
			return e.ActorsByAwards(action.Filters.Awards, order, n), nil
		case models.CriteriaFilterDescriptions:
			return e.ActorsByDescription(action.Filters.Words, order, n), nil
		}
	case models.ObjectMovies:
		return e.videos(e.catalog.Movies(), action)
	case models.ObjectShows:
		return e.videos(e.catalog.Shows(), action)
	case models.ObjectUsers:
		if action.Criteria == models.CriteriaNumRatings {
			return e.UsersByRatings(order, n), nil
		}
	}
	return Result{}, fmt.Errorf("%w: %s/%s", ErrUnsupported, action.ObjectType, action.Criteria)
}

//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Evaluator) videos(all []*models.Video, action models.Action) (Result, error) {
	filtered := FilterVideos(all, action.Filters)
	order, n := action.SortType, action.Number

	switch action.Criteria {
	case models.CriteriaRatings:
		return VideosByRating(filtered, order, n), nil
	case models.CriteriaLongest:
		return VideosByDuration(filtered, order, n), nil
	case models.CriteriaFavorite:
		return VideosByFavorites(filtered, order, n), nil
	case models.CriteriaMostViewed:
		return VideosByViews(filtered, order, n), nil
	}
	return Result{}, fmt.Errorf("%w: %s/%s", ErrUnsupported, action.ObjectType, action.Criteria)
}

// ActorsByAverage ranks actors with a nonzero filmography rating mean.
func (e *Evaluator) ActorsByAverage(order models.SortOrder, n int) Result {
	type scored struct {
		actor *models.Actor
		mean  float64
	}

	var rows []scored
	for _, a := range e.catalog.Actors() {
		if mean := a.FilmographyRatingMean(e.catalog); mean != 0 {
			rows = append(rows, scored{actor: a, mean: mean})
		}
	}
	return Result{Items: Rank(rows, func(s scored) (float64, string) {
		return s.mean, s.actor.Name
	}, order, n)}
}

// ActorsByAwards ranks actors holding every requested award category by
// their total award count.
func (e *Evaluator) ActorsByAwards(categories []models.AwardCategory, order models.SortOrder, n int) Result {
	actors := Filter(e.catalog.Actors(), func(a *models.Actor) bool {
		return a.HasAwards(categories)
	})
	return Result{Items: Rank(actors, func(a *models.Actor) (float64, string) {
		return float64(a.NumAwards()), a.Name
	}, order, n)}
}

// ActorsByDescription returns actors whose career description contains
// every keyword, ordered by name.
func (e *Evaluator) ActorsByDescription(words []string, order models.SortOrder, n int) Result {
	actors := Filter(e.catalog.Actors(), func(a *models.Actor) bool {
		return a.HasKeywords(words)
	})
	return Result{Items: Rank(actors, func(a *models.Actor) (float64, string) {
		return 0, a.Name
	}, order, n)}
}

// UsersByRatings ranks users that rated at least once by rating count.
func (e *Evaluator) UsersByRatings(order models.SortOrder, n int) Result {
	users := Filter(e.catalog.Users(), func(u *models.User) bool {
		return u.NumRatings > 0
	})
	return Result{Items: Rank(users, func(u *models.User) (float64, string) {
		return float64(u.NumRatings), u.Username
	}, order, n)}
}

// FilterVideos keeps videos released in the filter year (if set) that
// carry every filter genre (if any).
func FilterVideos(videos []*models.Video, f models.Filters) []*models.Video {
	return Filter(videos, func(v *models.Video) bool {
		if f.Year != nil && v.Year != *f.Year {
			return false
		}
		return v.HasGenres(f.Genres)
	})
}

// VideosByRating ranks rated videos by rating.
func VideosByRating(videos []*models.Video, order models.SortOrder, n int) Result {
	return rankNonZero(videos, func(v *models.Video) float64 { return v.Rating() }, order, n)
}

// VideosByDuration ranks videos by running time.
func VideosByDuration(videos []*models.Video, order models.SortOrder, n int) Result {
	return rankNonZero(videos, func(v *models.Video) float64 { return float64(v.Duration()) }, order, n)
}

// VideosByFavorites ranks favorited videos by favorite count.
func VideosByFavorites(videos []*models.Video, order models.SortOrder, n int) Result {
	return rankNonZero(videos, func(v *models.Video) float64 { return float64(v.NumFavorites) }, order, n)
}

// VideosByViews ranks viewed videos by view count.
func VideosByViews(videos []*models.Video, order models.SortOrder, n int) Result {
	return rankNonZero(videos, func(v *models.Video) float64 { return float64(v.NumViews) }, order, n)
}

func rankNonZero(videos []*models.Video, metric func(*models.Video) float64, order models.SortOrder, n int) Result {
	type scored struct {
		title string
		value float64
	}

	rows := make([]scored, 0, len(videos))
	for _, v := range videos {
		if value := metric(v); value != 0 {
			rows = append(rows, scored{title: v.Title, value: value})
		}
	}
	return Result{Items: Rank(rows, func(s scored) (float64, string) {
		return s.value, s.title
	}, order, n)}
}
