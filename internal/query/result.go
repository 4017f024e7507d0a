// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package query

import "strings"

// resultPrefix starts every query result line.
const resultPrefix = "Query result: "

// Result is the ordered, truncated output of a query.
type Result struct {
	Items []string `json:"items"`
}

// Empty reports whether no row survived filtering.
func (r Result) Empty() bool {
	return len(r.Items) == 0
}

// String renders the result line, e.g. "Query result: [Alpha, Beta]".
func (r Result) String() string {
	return resultPrefix + FormatList(r.Items)
}

// FormatList renders names as a bracketed, comma-space separated list.
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
