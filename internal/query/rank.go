// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package query

import (
	"cmp"
	"slices"

	"github.com/tomtom215/reelbase/internal/models"
)

// Key extracts the ranking keys of an item: a numeric primary key and the
// lexicographic tie-breaker.
type Key[T any] func(item T) (primary float64, name string)

// Rank orders items by (primary, name) ascending, reverses the whole order
// for descending requests, and returns at most limit names.
//
// Keys are computed once per item, so derived values such as a show's
// rating are not recomputed on every comparison.
func Rank[T any](items []T, key Key[T], order models.SortOrder, limit int) []string {
	type keyed struct {
		primary float64
		name    string
	}

	rows := make([]keyed, len(items))
	for i, it := range items {
		p, n := key(it)
		rows[i] = keyed{primary: p, name: n}
	}

	compare := func(a, b keyed) int {
		if c := cmp.Compare(a.primary, b.primary); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	}
	if order == models.SortDescending {
		asc := compare
		compare = func(a, b keyed) int { return asc(b, a) }
	}
	slices.SortStableFunc(rows, compare)

	if limit < 0 {
		limit = 0
	}
	if limit > len(rows) {
		limit = len(rows)
	}
	names := make([]string, limit)
	for i := range names {
		names[i] = rows[i].name
	}
	return names
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
