// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

/*
Package models defines the entities the Reelbase engine operates on.

Key Components:

  - Actor: career description, filmography and award counts
  - Video: a movie or a show, stored as one struct tagged with a VideoKind
  - Season: per-season duration and submitted grades of a show
  - User: subscription tier, viewing history, favorites and rating bookkeeping
  - Action: one decoded command, query or recommendation descriptor

Video Variants:

Movies and shows share title, year, cast, genres and the favorite/view
counters. They differ in how rating and duration are derived:

  - Movie: rating is a running mean updated on every accepted grade,
    duration is fixed.
  - Show: rating is the mean of the per-season means (a season without
    grades counts as 0) and is recomputed on every read; duration is the
    sum of season durations.

Callers never switch on the kind themselves; Rating, Duration and AddRating
dispatch internally.

Mutability:

Entities are built once from the input dataset. Afterwards only the
aggregate fields change (video counters and grades, user history,
favorites and rating records). Nothing is ever removed.

The package has no dependencies on other internal packages.
*/
package models
