// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package models

// SubscriptionType is the subscription tier of a user.
type SubscriptionType string

const (
	SubscriptionStandard SubscriptionType = "STANDARD"
	// SubscriptionBasic is accepted as an alias of SubscriptionStandard.
	SubscriptionBasic   SubscriptionType = "BASIC"
	SubscriptionPremium SubscriptionType = "PREMIUM"
)

// User is a catalog user together with its viewing and rating state.
type User struct {
	// Username is the unique user key.
	Username string `json:"username"`

	// Subscription is fixed for the lifetime of the run.
	Subscription SubscriptionType `json:"subscription_type"`

	// History maps a title to the number of times the user viewed it.
	History map[string]int `json:"history"`

	// Favorites holds favorited titles (movies and shows alike).
	Favorites map[string]struct{} `json:"-"`

	// NumRatings counts rating commands that passed the seen check.
	NumRatings int `json:"num_ratings"`

	ratedMovies map[string]struct{}
	ratedShows  map[string]map[int]struct{}
}

// NewUser creates a user from its raw history and favorites.
// The history map is copied.
func NewUser(username string, subscription SubscriptionType, history map[string]int, favorites []string) *User {
	u := &User{
		Username:     username,
		Subscription: subscription,
		History:      make(map[string]int, len(history)),
		Favorites:    make(map[string]struct{}, len(favorites)),
		ratedMovies:  make(map[string]struct{}),
		ratedShows:   make(map[string]map[int]struct{}),
	}
	for title, n := range history {
		u.History[title] = n
	}
	for _, title := range favorites {
		u.Favorites[title] = struct{}{}
	}
	return u
}

// IsPremium reports whether the user may receive premium recommendations.
func (u *User) IsPremium() bool {
	return u.Subscription == SubscriptionPremium
}

// HasSeen reports whether the title is in the user's history.
func (u *User) HasSeen(title string) bool {
	_, ok := u.History[title]
	return ok
}

// View records one more view of title and returns the new count.
func (u *User) View(title string) int {
	u.History[title]++
	return u.History[title]
}

// IsFavorite reports whether the title is already a favorite.
func (u *User) IsFavorite(title string) bool {
	_, ok := u.Favorites[title]
	return ok
}

// AddFavorite marks the title as a favorite.
func (u *User) AddFavorite(title string) {
	u.Favorites[title] = struct{}{}
}

// HasRatedMovie reports whether the user already rated the movie.
func (u *User) HasRatedMovie(title string) bool {
	_, ok := u.ratedMovies[title]
	return ok
}

// MarkMovieRated records a rating of the movie.
func (u *User) MarkMovieRated(title string) {
	u.ratedMovies[title] = struct{}{}
}

// HasRatedSeason reports whether the user already rated the show season.
func (u *User) HasRatedSeason(title string, season int) bool {
	_, ok := u.ratedShows[title][season]
	return ok
}

// MarkSeasonRated records a rating of the show season.
func (u *User) MarkSeasonRated(title string, season int) {
	seasons, ok := u.ratedShows[title]
	if !ok {
		seasons = make(map[int]struct{})
		u.ratedShows[title] = seasons
	}
	seasons[season] = struct{}{}
}

// IncrementRatings bumps the rating counter.
func (u *User) IncrementRatings() {
	u.NumRatings++
}
