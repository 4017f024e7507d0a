// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

/*
Package config provides layered configuration loading for Reelbase.

# Configuration Sources

Configuration is built with Koanf v2 in three layers, later layers winning:

 1. Defaults from defaultConfig()
 2. An optional YAML file (CONFIG_PATH, then config.yaml / config.yml, then
    /etc/reelbase/config.yaml)
 3. Environment variables listed below

# Environment Variables

  - DATASET_PATH: Input dataset JSON file (default: dataset.json)
  - OUTPUT_PATH: Results JSON file (default: results.json)
  - OUTPUT_INDENT: Pretty-print results (default: true)
  - ENGINE_CACHE_ENABLED: Memoize read-only results (default: true)
  - ENGINE_CACHE_CAPACITY: Result cache entries (default: 1024)
  - ENGINE_CACHE_TTL: Cached result lifetime, e.g. 30s (default: 0, no expiry)
  - METRICS_ENABLED: Write a Prometheus textfile after the run (default: false)
  - METRICS_TEXTFILE_PATH: Textfile destination (required when enabled)
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Unlisted variables are ignored.

# Example YAML

	dataset:
	  path: testdata/large.json
	output:
	  path: out/results.json
	  indent: false
	engine:
	  cache_capacity: 4096
	  cache_ttl: 5m
	logging:
	  level: debug
	  format: console
*/
package config
