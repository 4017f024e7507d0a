// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package dataset

import (
	"fmt"

	"github.com/tomtom215/reelbase/internal/models"
	"github.com/tomtom215/reelbase/internal/validation"
)

// Validate shape-checks the document: struct tags first, then checks that
// span records (unique keys) or depend on the action kind. Every problem
// is reported, not just the first.
//
// Usernames referenced by actions are not checked against the user list;
// the engine answers those actions with an unknown-user result.
func (d *Document) Validate() error {
	verr := validation.ValidateStruct(d)
	if verr == nil {
		verr = &validation.StructValidationError{}
	}

	d.checkUnique(verr)
	for i := range d.Actions {
		checkAction(verr, i, &d.Actions[i])
	}

	if verr.Empty() {
		return nil
	}
	return fmt.Errorf("invalid dataset: %w", verr)
}

func (d *Document) checkUnique(verr *validation.StructValidationError) {
	titles := make(map[string]struct{}, len(d.Movies)+len(d.Shows))
	for i := range d.Movies {
		unique(verr, titles, d.Movies[i].Title, fmt.Sprintf("movies[%d].title", i))
	}
	for i := range d.Shows {
		unique(verr, titles, d.Shows[i].Title, fmt.Sprintf("shows[%d].title", i))
	}

	names := make(map[string]struct{}, len(d.Actors))
	for i := range d.Actors {
		unique(verr, names, d.Actors[i].Name, fmt.Sprintf("actors[%d].name", i))
	}

	usernames := make(map[string]struct{}, len(d.Users))
	for i := range d.Users {
		unique(verr, usernames, d.Users[i].Username, fmt.Sprintf("users[%d].username", i))
	}
}

func unique(verr *validation.StructValidationError, seen map[string]struct{}, key, path string) {
	if key == "" {
		return
	}
	if _, dup := seen[key]; dup {
		verr.Add(path, "unique", fmt.Sprintf("duplicates %q", key))
		return
	}
	seen[key] = struct{}{}
}

var (
	commandKinds = map[string]bool{
		models.CommandFavorite: true,
		models.CommandView:     true,
		models.CommandRating:   true,
	}
	strategies = map[string]bool{
		models.StrategyStandard:   true,
		models.StrategyBestUnseen: true,
		models.StrategyPopular:    true,
		models.StrategyFavorite:   true,
		models.StrategySearch:     true,
	}
	objectTypes = map[string]bool{
		string(models.ObjectActors): true,
		string(models.ObjectMovies): true,
		string(models.ObjectShows):  true,
		string(models.ObjectUsers):  true,
	}
)

func checkAction(verr *validation.StructValidationError, i int, a *ActionInput) {
	path := func(field string) string {
		return fmt.Sprintf("actions[%d].%s", i, field)
	}

	switch models.ActionType(a.ActionType) {
	case models.ActionCommand:
		if !commandKinds[a.Type] {
			verr.Add(path("type"), "oneof", "must be one of: favorite view rating")
		}
		if a.Username == "" {
			verr.Add(path("username"), "required", "is required")
		}
		if a.Title == "" {
			verr.Add(path("title"), "required", "is required")
		}
	case models.ActionQuery:
		if !objectTypes[a.ObjectType] {
			verr.Add(path("object_type"), "oneof", "must be one of: actors movies shows users")
		}
		if a.Criteria == "" {
			verr.Add(path("criteria"), "required", "is required")
		}
	case models.ActionRecommendation:
		if !strategies[a.Type] {
			verr.Add(path("type"), "oneof", "must be one of: standard best_unseen popular favorite search")
		}
		if a.Username == "" {
			verr.Add(path("username"), "required", "is required")
		}
		if a.Type == models.StrategySearch && a.Genre == "" {
			verr.Add(path("genre"), "required", "is required for search")
		}
	}
}
