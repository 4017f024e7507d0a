// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package models

import (
	"strings"
	"sync"
)

// AwardCategory is one of the fixed award categories an actor can hold.
type AwardCategory string

const (
	AwardBestPerformance     AwardCategory = "BEST_PERFORMANCE"
	AwardBestDirector        AwardCategory = "BEST_DIRECTOR"
	AwardPeopleChoice        AwardCategory = "PEOPLE_CHOICE_AWARD"
	AwardBestSupportingActor AwardCategory = "BEST_SUPPORTING_ACTOR"
	AwardBestScreenplay      AwardCategory = "BEST_SCREENPLAY"
)

// AwardCategories lists every known category in declaration order.
var AwardCategories = []AwardCategory{
	AwardBestPerformance,
	AwardBestDirector,
	AwardPeopleChoice,
	AwardBestSupportingActor,
	AwardBestScreenplay,
}

// VideoLookup resolves a title to a catalog video.
type VideoLookup interface {
	Video(title string) (*Video, bool)
}

// Actor is a cast member with a free-text career description.
type Actor struct {
	// Name is the unique actor key.
	Name string `json:"name"`

	// CareerDescription is free text searched by keyword queries.
	CareerDescription string `json:"career_description"`

	// Filmography lists video titles in input order.
	// Titles outside the catalog are allowed and ignored by rating lookups.
	Filmography []string `json:"filmography"`

	// Awards maps a category to the number of awards won in it.
	Awards map[AwardCategory]int `json:"awards"`

	keywordsOnce sync.Once
	keywords     map[string]struct{}
}

// NumAwards returns the total number of awards across all categories.
func (a *Actor) NumAwards() int {
	total := 0
	for _, n := range a.Awards {
		total += n
	}
	return total
}

// HasAwards reports whether the actor holds at least one award entry in
// every requested category. An empty request matches every actor.
func (a *Actor) HasAwards(categories []AwardCategory) bool {
	for _, c := range categories {
		if _, ok := a.Awards[c]; !ok {
			return false
		}
	}
	return true
}

// HasKeywords reports whether every word appears as a token of the career
// description. Matching is case-insensitive.
func (a *Actor) HasKeywords(words []string) bool {
	tokens := a.descriptionTokens()
	for _, w := range words {
		if _, ok := tokens[strings.ToLower(w)]; !ok {
			return false
		}
	}
	return true
}

// FilmographyRatingMean averages the ratings of filmography titles that
// resolve in the catalog and carry a nonzero rating. Returns 0 if none do.
func (a *Actor) FilmographyRatingMean(videos VideoLookup) float64 {
	var sum float64
	rated := 0
	for _, title := range a.Filmography {
		v, ok := videos.Video(title)
		if !ok {
			continue
		}
		if r := v.Rating(); r != 0 {
			sum += r
			rated++
		}
	}
	if rated == 0 {
		return 0
	}
	return sum / float64(rated)
}

// descriptionTokens lazily tokenizes the career description. The
// description never changes after construction, so the set is built once.
func (a *Actor) descriptionTokens() map[string]struct{} {
	a.keywordsOnce.Do(func() {
		a.keywords = Tokenize(a.CareerDescription)
	})
	return a.keywords
}

// Tokenize lowercases text, turns the punctuation set !?,."()'- into
// separators and returns the distinct whitespace-separated words.
func Tokenize(text string) map[string]struct{} {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '!', '?', ',', '.', '"', '(', ')', '\'', '-':
			return ' '
		}
		return r
	}, strings.ToLower(text))

	fields := strings.Fields(cleaned)
	tokens := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		tokens[f] = struct{}{}
	}
	return tokens
}
