// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package cache provides a generic, capacity-bounded LRU cache.
//
// The engine uses it to memoize the result lines of read-only actions.
// Every mutating command purges it, so a hit is always consistent with the
// current catalog state. An optional TTL expires entries lazily on read.
//
// Example:
//
//	c := cache.NewLRU[string](256, 0)
//	c.Add(key, line)
//	if line, ok := c.Get(key); ok {
//	    // reuse line
//	}
//	c.Purge()
package cache
