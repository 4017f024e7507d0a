// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package models

// VideoKind tags which variant a Video holds.
type VideoKind int

const (
	// KindMovie is a single feature with a fixed duration.
	KindMovie VideoKind = iota
	// KindShow is a series of seasons.
	KindShow
)

// String returns a human-readable name for the kind.
func (k VideoKind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindShow:
		return "show"
	default:
		return "unknown"
	}
}

// Season is one season of a show.
type Season struct {
	// Number is the 1-based season number.
	Number int `json:"number"`

	// Duration is the total running time in minutes.
	Duration int `json:"duration"`

	// Ratings holds every accepted grade, in submission order.
	Ratings []float64 `json:"ratings"`
}

// Mean returns the average grade of the season, or 0 without grades.
func (s *Season) Mean() float64 {
	if len(s.Ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range s.Ratings {
		sum += r
	}
	return sum / float64(len(s.Ratings))
}

// Video is a movie or a show. The shared fields are exported; the
// variant payload is reached through Rating, Duration and AddRating.
type Video struct {
	Title  string    `json:"title"`
	Year   int       `json:"year"`
	Cast   []string  `json:"cast"`
	Genres []string  `json:"genres"`
	Kind   VideoKind `json:"kind"`

	// NumFavorites counts users that added the video to their favorites.
	NumFavorites int `json:"num_favorites"`

	// NumViews is the running total of views across all users.
	NumViews int `json:"num_views"`

	// movie payload
	duration   int
	rating     float64
	numRatings int

	// show payload
	numberOfSeasons int
	seasons         []*Season
}

// NewMovie creates a movie with no ratings.
func NewMovie(title string, year int, cast, genres []string, duration int) *Video {
	return &Video{
		Title:    title,
		Year:     year,
		Cast:     cast,
		Genres:   genres,
		Kind:     KindMovie,
		duration: duration,
	}
}

// NewShow creates a show from its seasons. numberOfSeasons is kept as
// declared by the input even when it disagrees with len(seasons).
func NewShow(title string, year int, cast, genres []string, numberOfSeasons int, seasons []*Season) *Video {
	return &Video{
		Title:           title,
		Year:            year,
		Cast:            cast,
		Genres:          genres,
		Kind:            KindShow,
		numberOfSeasons: numberOfSeasons,
		seasons:         seasons,
	}
}

// IsMovie reports whether the video is a movie.
func (v *Video) IsMovie() bool {
	return v.Kind == KindMovie
}

// IsShow reports whether the video is a show.
func (v *Video) IsShow() bool {
	return v.Kind == KindShow
}

// Rating returns the current rating.
//
// For movies this is the stored running mean. For shows it is recomputed
// as the mean over seasons of each season's mean grade.
func (v *Video) Rating() float64 {
	if v.Kind == KindMovie {
		return v.rating
	}
	if len(v.seasons) == 0 {
		return 0
	}
	var sum float64
	for _, s := range v.seasons {
		sum += s.Mean()
	}
	if sum == 0 {
		return 0
	}
	return sum / float64(len(v.seasons))
}

// Duration returns the running time in minutes. Shows sum their seasons.
func (v *Video) Duration() int {
	if v.Kind == KindMovie {
		return v.duration
	}
	total := 0
	for _, s := range v.seasons {
		total += s.Duration
	}
	return total
}

// NumRatings returns how many grades the video has accepted.
func (v *Video) NumRatings() int {
	if v.Kind == KindMovie {
		return v.numRatings
	}
	total := 0
	for _, s := range v.seasons {
		total += len(s.Ratings)
	}
	return total
}

// NumberOfSeasons returns the declared season count of a show, 0 for movies.
func (v *Video) NumberOfSeasons() int {
	return v.numberOfSeasons
}

// Seasons returns the seasons of a show, nil for movies.
func (v *Video) Seasons() []*Season {
	return v.seasons
}

// AddRating applies a grade. Movies fold it into the running mean and
// ignore season. Shows append it to the 1-based season and report false
// if that season does not exist.
func (v *Video) AddRating(grade float64, season int) bool {
	if v.Kind == KindMovie {
		v.numRatings++
		n := float64(v.numRatings)
		v.rating = v.rating*(n-1)/n + grade/n
		return true
	}
	if season < 1 || season > len(v.seasons) {
		return false
	}
	s := v.seasons[season-1]
	s.Ratings = append(s.Ratings, grade)
	return true
}

// AddFavorite increments the favorite counter.
func (v *Video) AddFavorite() {
	v.NumFavorites++
}

// AddViews adds n views to the running total.
func (v *Video) AddViews(n int) {
	v.NumViews += n
}

// HasGenre reports whether the video carries the genre.
func (v *Video) HasGenre(genre string) bool {
	for _, g := range v.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// HasGenres reports whether the video carries every listed genre.
func (v *Video) HasGenres(genres []string) bool {
	for _, g := range genres {
		if !v.HasGenre(g) {
			return false
		}
	}
	return true
}
