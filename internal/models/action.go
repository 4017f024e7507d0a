// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package models

// ActionType is the top-level discriminator of an action.
type ActionType string

const (
	ActionCommand        ActionType = "command"
	ActionQuery          ActionType = "query"
	ActionRecommendation ActionType = "recommendation"
)

// Command kinds, carried in Action.Kind for command actions.
const (
	CommandFavorite = "favorite"
	CommandView     = "view"
	CommandRating   = "rating"
)

// Recommendation strategies, carried in Action.Kind for recommendation actions.
const (
	StrategyStandard   = "standard"
	StrategyBestUnseen = "best_unseen"
	StrategyPopular    = "popular"
	StrategyFavorite   = "favorite"
	StrategySearch     = "search"
)

// ObjectType selects the collection a query runs over.
type ObjectType string

const (
	ObjectActors ObjectType = "actors"
	ObjectMovies ObjectType = "movies"
	ObjectShows  ObjectType = "shows"
	ObjectUsers  ObjectType = "users"
)

// Criteria selects the ranking key of a query.
type Criteria string

const (
	CriteriaAverage            Criteria = "average"
	CriteriaAwards             Criteria = "awards"
	CriteriaFilterDescriptions Criteria = "filter_description"
	CriteriaRatings            Criteria = "ratings"
	CriteriaLongest            Criteria = "longest"
	CriteriaFavorite           Criteria = "favorite"
	CriteriaMostViewed         Criteria = "most_viewed"
	CriteriaNumRatings         Criteria = "num_ratings"
)

// SortOrder is the requested direction of a query.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// Filters narrows a query. Year and Genres apply to video queries, Words
// to description queries and Awards to award queries.
type Filters struct {
	Year   *int            `json:"year,omitempty"`
	Genres []string        `json:"genres,omitempty"`
	Words  []string        `json:"words,omitempty"`
	Awards []AwardCategory `json:"awards,omitempty"`
}

// Action is one unit of work replayed by the engine.
//
// ID is excluded from the JSON form so that two identical read-only actions
// share the same encoded signature.
type Action struct {
	ID   int        `json:"-"`
	Type ActionType `json:"action_type"`

	// Kind is the command kind or the recommendation strategy.
	Kind string `json:"type,omitempty"`

	Username string  `json:"username,omitempty"`
	Title    string  `json:"title,omitempty"`
	Grade    float64 `json:"grade,omitempty"`
	Season   int     `json:"season,omitempty"`

	ObjectType ObjectType `json:"object_type,omitempty"`
	Criteria   Criteria   `json:"criteria,omitempty"`
	SortType   SortOrder  `json:"sort_type,omitempty"`
	Number     int        `json:"number,omitempty"`
	Filters    Filters    `json:"filters"`

	// Genre is the search genre of a search recommendation.
	Genre string `json:"genre,omitempty"`
}

// ReadOnly reports whether the action leaves catalog state untouched.
func (a *Action) ReadOnly() bool {
	return a.Type != ActionCommand
}

// Label names the action for logs and metrics, e.g. "query/movies".
func (a *Action) Label() string {
	if a.Type == ActionQuery {
		return string(a.Type) + "/" + string(a.ObjectType)
	}
	return string(a.Type) + "/" + a.Kind
}
