// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package command applies the state-mutating user actions: favorite, view
// and rating.
//
// Every method returns the exact result line on success. A rejected command
// returns a *Error whose Error() is the exact result line; rejected
// commands never touch video state.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
)

// Evaluator mutates catalog state for command actions.
type Evaluator struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewEvaluator creates a command evaluator over the catalog.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEvaluator(c *catalog.Catalog, logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		catalog: c,
		logger:  logger.With().Str("component", "command").Logger(),
	}
}

// Execute routes a command action by kind.
//
//nolint:gocritic // hugeParam: action passed by value for immutability
func (e *Evaluator) Execute(action models.Action) (string, error) {
	user, ok := e.catalog.User(action.Username)
	if !ok {
		return "", reject(action.Username, ErrUnknownUser)
	}

	switch action.Kind {
	case models.CommandFavorite:
		return e.Favorite(user, action.Title)
	case models.CommandView:
		return e.View(user, action.Title), nil
	case models.CommandRating:
		return e.Rate(user, action.Title, action.Grade, action.Season)
	default:
		return "", reject(action.Kind, ErrUnsupported)
	}
}

// Favorite adds a seen title to the user's favorites.
func (e *Evaluator) Favorite(user *models.User, title string) (string, error) {
	if !user.HasSeen(title) {
		return "", reject(title, ErrNotSeen)
	}
	if user.IsFavorite(title) {
		return "", reject(title, ErrAlreadyFavorite)
	}

	user.AddFavorite(title)
	if v, ok := e.catalog.Video(title); ok {
		v.AddFavorite()
	}
	return fmt.Sprintf("success -> %s was added as favourite", title), nil
}

// View records one view. It always succeeds, even for titles outside the
// catalog, in which case only the user's history changes.
func (e *Evaluator) View(user *models.User, title string) string {
	if v, ok := e.catalog.Video(title); ok {
		v.AddViews(1)
	}
	count := user.View(title)
	return fmt.Sprintf("success -> %s was viewed with total views of %d", title, count)
}

// Rate grades a movie, or one season of a show.
//
// The user's rating counter is bumped as soon as the title passes the seen
// check, before the duplicate check.
func (e *Evaluator) Rate(user *models.User, title string, grade float64, season int) (string, error) {
	if !user.HasSeen(title) {
		return "", reject(title, ErrNotSeen)
	}
	user.IncrementRatings()

	if movie, ok := e.catalog.Movie(title); ok {
		if user.HasRatedMovie(title) {
			return "", reject(title, ErrAlreadyRated)
		}
		movie.AddRating(grade, 0)
		user.MarkMovieRated(title)
		return ratedMessage(title, grade, user.Username), nil
	}

	if user.HasRatedSeason(title, season) {
		return "", reject(title, ErrAlreadyRated)
	}
	if show, ok := e.catalog.Show(title); ok {
		if !show.AddRating(grade, season) {
			e.logger.Warn().
				Str("title", title).
				Int("season", season).
				Int("seasons", len(show.Seasons())).
				Msg("season out of range, grade not applied")
		}
	}
	user.MarkSeasonRated(title, season)
	return ratedMessage(title, grade, user.Username), nil
}

func ratedMessage(title string, grade float64, username string) string {
	return fmt.Sprintf("success -> %s was rated with %s by %s", title, FormatGrade(grade), username)
}

// FormatGrade renders a grade the way the reference output does: the
// shortest decimal form, always with a fractional part ("8.0", "7.5").
func FormatGrade(grade float64) string {
	s := strconv.FormatFloat(grade, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
