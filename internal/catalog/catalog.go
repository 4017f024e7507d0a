// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package catalog indexes the entities of one run.
//
// A Catalog is built once from a Source and never rebuilt. It owns the
// entities; evaluators mutate video and user aggregates through the
// pointers it hands out. The catalog is not safe for concurrent mutation.
package catalog

import "github.com/tomtom215/reelbase/internal/models"

// Source is the already-decoded dataset a catalog is built from.
// Slices are in input order.
type Source struct {
	Actors []*models.Actor
	Movies []*models.Video
	Shows  []*models.Video
	Users  []*models.User
}

// Stats reports collection sizes.
type Stats struct {
	Actors int `json:"actors"`
	Movies int `json:"movies"`
	Shows  int `json:"shows"`
	Users  int `json:"users"`
}

// Catalog holds every index the evaluators need.
type Catalog struct {
	movies map[string]*models.Video
	shows  map[string]*models.Video
	videos map[string]*models.Video
	actors map[string]*models.Actor
	users  map[string]*models.User

	// titles is the canonical enumeration order: movies then shows, each
	// in input order, first occurrence wins.
	titles []string

	movieList []*models.Video
	showList  []*models.Video
	actorList []*models.Actor
	userList  []*models.User
}

// New builds a catalog and folds the favorites and history already present
// in the raw user data into the video counters.
//
// A title reused across movies and shows keeps its first definition; later
// duplicates are dropped so that a title is never both a movie and a show.
func New(src Source) *Catalog {
	c := &Catalog{
		movies: make(map[string]*models.Video, len(src.Movies)),
		shows:  make(map[string]*models.Video, len(src.Shows)),
		videos: make(map[string]*models.Video, len(src.Movies)+len(src.Shows)),
		actors: make(map[string]*models.Actor, len(src.Actors)),
		users:  make(map[string]*models.User, len(src.Users)),
		titles: make([]string, 0, len(src.Movies)+len(src.Shows)),
	}

	for _, a := range src.Actors {
		if _, dup := c.actors[a.Name]; dup {
			continue
		}
		c.actors[a.Name] = a
		c.actorList = append(c.actorList, a)
	}

	for _, m := range src.Movies {
		if c.addVideo(m) {
			c.movies[m.Title] = m
			c.movieList = append(c.movieList, m)
		}
	}
	for _, s := range src.Shows {
		if c.addVideo(s) {
			c.shows[s.Title] = s
			c.showList = append(c.showList, s)
		}
	}

	for _, u := range src.Users {
		if _, dup := c.users[u.Username]; dup {
			continue
		}
		c.users[u.Username] = u
		c.userList = append(c.userList, u)
		c.foldUser(u)
	}

	return c
}

func (c *Catalog) addVideo(v *models.Video) bool {
	if _, dup := c.videos[v.Title]; dup {
		return false
	}
	c.videos[v.Title] = v
	c.titles = append(c.titles, v.Title)
	return true
}

// foldUser credits the user's pre-existing favorites and views.
func (c *Catalog) foldUser(u *models.User) {
	for title := range u.Favorites {
		if v, ok := c.videos[title]; ok {
			v.AddFavorite()
		}
	}
	for title, n := range u.History {
		if v, ok := c.videos[title]; ok {
			v.AddViews(n)
		}
	}
}

// Movie returns the movie with the given title.
func (c *Catalog) Movie(title string) (*models.Video, bool) {
	v, ok := c.movies[title]
	return v, ok
}

// Show returns the show with the given title.
func (c *Catalog) Show(title string) (*models.Video, bool) {
	v, ok := c.shows[title]
	return v, ok
}

// Video returns the movie or show with the given title.
func (c *Catalog) Video(title string) (*models.Video, bool) {
	v, ok := c.videos[title]
	return v, ok
}

// Actor returns the actor with the given name.
func (c *Catalog) Actor(name string) (*models.Actor, bool) {
	a, ok := c.actors[name]
	return a, ok
}

// User returns the user with the given username.
func (c *Catalog) User(username string) (*models.User, bool) {
	u, ok := c.users[username]
	return u, ok
}

// Movies returns all movies in input order.
func (c *Catalog) Movies() []*models.Video {
	return c.movieList
}

// Shows returns all shows in input order.
func (c *Catalog) Shows() []*models.Video {
	return c.showList
}

// Actors returns all actors in input order.
func (c *Catalog) Actors() []*models.Actor {
	return c.actorList
}

// Users returns all users in input order.
func (c *Catalog) Users() []*models.User {
	return c.userList
}

// Titles returns every video title in canonical order.
func (c *Catalog) Titles() []string {
	return c.titles
}

// Videos returns every video in canonical title order.
func (c *Catalog) Videos() []*models.Video {
	out := make([]*models.Video, 0, len(c.titles))
	for _, t := range c.titles {
		out = append(out, c.videos[t])
	}
	return out
}

// Unseen returns the videos absent from the user's history, in canonical
// title order.
func (c *Catalog) Unseen(u *models.User) []*models.Video {
	out := make([]*models.Video, 0, len(c.titles))
	for _, t := range c.titles {
		if !u.HasSeen(t) {
			out = append(out, c.videos[t])
		}
	}
	return out
}

// Stats returns the size of each collection.
func (c *Catalog) Stats() Stats {
	return Stats{
		Actors: len(c.actorList),
		Movies: len(c.movieList),
		Shows:  len(c.showList),
		Users:  len(c.userList),
	}
}
