// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package dataset reads the input document: the four entity collections
// and the ordered action list.
//
// The document is decoded with goccy/go-json and shape-checked with the
// validation package before any entity is built. Mapping to catalog
// entities happens in Source and Actions.
package dataset

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Document is the raw input document.
type Document struct {
	Actors  []ActorInput  `json:"actors" validate:"dive"`
	Movies  []MovieInput  `json:"movies" validate:"dive"`
	Shows   []ShowInput   `json:"shows" validate:"dive"`
	Users   []UserInput   `json:"users" validate:"dive"`
	Actions []ActionInput `json:"actions" validate:"dive"`
}

// ActorInput is one raw actor record.
type ActorInput struct {
	Name              string         `json:"name" validate:"required"`
	CareerDescription string         `json:"career_description"`
	Filmography       []string       `json:"filmography"`
	Awards            map[string]int `json:"awards" validate:"dive,keys,oneof=BEST_PERFORMANCE BEST_DIRECTOR PEOPLE_CHOICE_AWARD BEST_SUPPORTING_ACTOR BEST_SCREENPLAY,endkeys,gte=0"`
}

// MovieInput is one raw movie record. Duration is in minutes.
type MovieInput struct {
	Title    string   `json:"title" validate:"required"`
	Year     int      `json:"year" validate:"gte=0"`
	Cast     []string `json:"cast"`
	Genres   []string `json:"genres"`
	Duration int      `json:"duration" validate:"gte=0"`
}

// SeasonInput is one raw season. Seasons are numbered by position from 1.
type SeasonInput struct {
	Duration int `json:"duration" validate:"gte=0"`
}

// ShowInput is one raw show record.
type ShowInput struct {
	Title           string        `json:"title" validate:"required"`
	Year            int           `json:"year" validate:"gte=0"`
	Cast            []string      `json:"cast"`
	Genres          []string      `json:"genres"`
	NumberOfSeasons int           `json:"number_of_seasons" validate:"gte=0"`
	Seasons         []SeasonInput `json:"seasons" validate:"dive"`
}

// UserInput is one raw user record.
type UserInput struct {
	Username         string         `json:"username" validate:"required"`
	SubscriptionType string         `json:"subscription_type" validate:"required,oneof=BASIC STANDARD PREMIUM"`
	History          map[string]int `json:"history" validate:"dive,gte=0"`
	FavoriteMovies   []string       `json:"favorite_movies"`
}

// FiltersInput narrows a query action.
type FiltersInput struct {
	Year   *int     `json:"year,omitempty"`
	Genres []string `json:"genres,omitempty"`
	Words  []string `json:"words,omitempty"`
	Awards []string `json:"awards,omitempty" validate:"dive,oneof=BEST_PERFORMANCE BEST_DIRECTOR PEOPLE_CHOICE_AWARD BEST_SUPPORTING_ACTOR BEST_SCREENPLAY"`
}

// ActionInput is one raw action. Which fields matter depends on
// ActionType and Type.
type ActionInput struct {
	ID         int          `json:"id" validate:"gte=0"`
	ActionType string       `json:"action_type" validate:"required,oneof=command query recommendation"`
	Type       string       `json:"type"`
	Username   string       `json:"username"`
	Title      string       `json:"title"`
	Grade      float64      `json:"grade" validate:"gte=0"`
	Season     int          `json:"season" validate:"gte=0"`
	ObjectType string       `json:"object_type"`
	Criteria   string       `json:"criteria"`
	SortType   string       `json:"sort_type" validate:"omitempty,oneof=asc desc"`
	Number     int          `json:"number" validate:"gte=0"`
	Filters    FiltersInput `json:"filters"`
	Genre      string       `json:"genre"`
}

// Load reads and decodes the document at path. It does not validate.
func Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	f, err := os.Open(path) //nolint:gosec // path comes from trusted configuration
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes a document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &doc, nil
}
