// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

/*
Package metrics provides Prometheus instrumentation for engine runs.

Reelbase is a batch tool with no HTTP surface, so metrics are not scraped.
Instead a run can dump the default registry to a file in the Prometheus
text format with WriteTextfile, ready for the node exporter textfile
collector.

# Available Metrics

Actions:
  - reelbase_actions_total{action_type, kind, outcome}: evaluated actions
  - reelbase_action_duration_seconds{action_type}: per-action latency

Result cache:
  - reelbase_result_cache_hits_total
  - reelbase_result_cache_misses_total
  - reelbase_result_cache_purges_total

Catalog and runs:
  - reelbase_catalog_entities{collection}: entity counts after ingestion
  - reelbase_runs_total{status}: completed or failed runs
  - reelbase_run_duration_seconds: wall time of a run

# Outcomes

The outcome label takes one of:

	success         command applied, or non-empty result
	error           command rejected (not seen, duplicate, unknown user)
	empty           query with no surviving rows
	not_applicable  recommendation that cannot be applied
	unsupported     unknown action type, kind or query criteria
*/
package metrics
