// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

/*
Package engine replays actions against a catalog and hands one result line
per action to a Sink.

Actions are evaluated strictly in input order. Commands mutate the catalog;
queries and recommendations only read it. Every action produces exactly one
line: rejected commands, empty queries, and inapplicable recommendations are
results, not errors. Run stops only for infrastructure failures such as a
cancelled context or a failing sink.

# Result Cache

With Config.CacheEnabled set, read-only results are memoized in an LRU keyed
by the action's JSON encoding (the action ID is not part of the key). Every
command purges the cache, so a later action always observes every earlier
mutation.

# Usage

	eng := engine.New(cat, engine.DefaultConfig(), logger)
	sink := results.NewJSONWriter("results.json", true)
	stats, err := eng.Run(ctx, actions, sink)
	if err != nil {
	    return err
	}
	if err := sink.Close(); err != nil {
	    return err
	}

# Observability

Each run gets a short run ID attached to its log lines. Outcomes, latencies,
and cache activity are recorded in the metrics package.
*/
package engine
