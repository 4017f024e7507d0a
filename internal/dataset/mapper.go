// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package dataset

import (
	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
)

// Source converts the raw records into catalog entities. Each call builds
// fresh entities, so the returned source can seed exactly one catalog.
func (d *Document) Source() catalog.Source {
	src := catalog.Source{
		Actors: make([]*models.Actor, 0, len(d.Actors)),
		Movies: make([]*models.Video, 0, len(d.Movies)),
		Shows:  make([]*models.Video, 0, len(d.Shows)),
		Users:  make([]*models.User, 0, len(d.Users)),
	}

	for i := range d.Actors {
		src.Actors = append(src.Actors, toActor(&d.Actors[i]))
	}
	for i := range d.Movies {
		m := &d.Movies[i]
		src.Movies = append(src.Movies, models.NewMovie(m.Title, m.Year, m.Cast, m.Genres, m.Duration))
	}
	for i := range d.Shows {
		src.Shows = append(src.Shows, toShow(&d.Shows[i]))
	}
	for i := range d.Users {
		src.Users = append(src.Users, toUser(&d.Users[i]))
	}
	return src
}

// ActionList converts the raw actions, preserving input order.
func (d *Document) ActionList() []models.Action {
	out := make([]models.Action, len(d.Actions))
	for i := range d.Actions {
		out[i] = toAction(&d.Actions[i])
	}
	return out
}

func toActor(in *ActorInput) *models.Actor {
	awards := make(map[models.AwardCategory]int, len(in.Awards))
	for k, n := range in.Awards {
		awards[models.AwardCategory(k)] = n
	}
	return &models.Actor{
		Name:              in.Name,
		CareerDescription: in.CareerDescription,
		Filmography:       in.Filmography,
		Awards:            awards,
	}
}

func toShow(in *ShowInput) *models.Video {
	seasons := make([]*models.Season, len(in.Seasons))
	for i, s := range in.Seasons {
		seasons[i] = &models.Season{Number: i + 1, Duration: s.Duration}
	}
	return models.NewShow(in.Title, in.Year, in.Cast, in.Genres, in.NumberOfSeasons, seasons)
}

func toUser(in *UserInput) *models.User {
	sub := models.SubscriptionType(in.SubscriptionType)
	if sub == models.SubscriptionBasic {
		sub = models.SubscriptionStandard
	}
	return models.NewUser(in.Username, sub, in.History, in.FavoriteMovies)
}

func toAction(in *ActionInput) models.Action {
	awards := make([]models.AwardCategory, len(in.Filters.Awards))
	for i, a := range in.Filters.Awards {
		awards[i] = models.AwardCategory(a)
	}
	if len(awards) == 0 {
		awards = nil
	}

	return models.Action{
		ID:         in.ID,
		Type:       models.ActionType(in.ActionType),
		Kind:       in.Type,
		Username:   in.Username,
		Title:      in.Title,
		Grade:      in.Grade,
		Season:     in.Season,
		ObjectType: models.ObjectType(in.ObjectType),
		Criteria:   models.Criteria(in.Criteria),
		SortType:   models.SortOrder(in.SortType),
		Number:     in.Number,
		Filters: models.Filters{
			Year:   in.Filters.Year,
			Genres: in.Filters.Genres,
			Words:  in.Filters.Words,
			Awards: awards,
		},
		Genre: in.Genre,
	}
}
