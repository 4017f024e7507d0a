// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package config

import "time"

// Config holds all application configuration.
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Dataset DatasetConfig `koanf:"dataset"`
	Output  OutputConfig  `koanf:"output"`
	Engine  EngineConfig  `koanf:"engine"`
	Metrics MetricsConfig `koanf:"metrics"`
	Logging LoggingConfig `koanf:"logging"`
}

// DatasetConfig locates the input document.
//
// Environment Variables:
//   - DATASET_PATH: Path to the dataset JSON file
type DatasetConfig struct {
	Path string `koanf:"path"`
}

// OutputConfig controls where and how results are written.
//
// Environment Variables:
//   - OUTPUT_PATH: Path of the results JSON file
//   - OUTPUT_INDENT: Pretty-print the results array
type OutputConfig struct {
	Path   string `koanf:"path"`
	Indent bool   `koanf:"indent"`
}

// EngineConfig tunes action evaluation.
//
// Environment Variables:
//   - ENGINE_CACHE_ENABLED: Memoize query and recommendation results
//   - ENGINE_CACHE_CAPACITY: Maximum cached results
//   - ENGINE_CACHE_TTL: Lifetime of a cached result (0 keeps results until purged)
type EngineConfig struct {
	// CacheEnabled memoizes read-only results between mutating commands.
	// Default: true
	CacheEnabled bool `koanf:"cache_enabled"`

	// CacheCapacity bounds the result cache. Must be positive when the
	// cache is enabled.
	// Default: 1024
	CacheCapacity int `koanf:"cache_capacity"`

	// CacheTTL expires cached results after the given duration. Zero
	// keeps them until the next command purges the cache.
	// Default: 0
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// MetricsConfig controls the Prometheus textfile export.
//
// Environment Variables:
//   - METRICS_ENABLED: Write metrics after the run
//   - METRICS_TEXTFILE_PATH: Destination for the textfile
type MetricsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	TextfilePath string `koanf:"textfile_path"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file, and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// ApplyArgs overrides the dataset and output paths with positional
// command-line arguments, in that order. Empty arguments are ignored.
func (c *Config) ApplyArgs(args []string) {
	if len(args) > 0 && args[0] != "" {
		c.Dataset.Path = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		c.Output.Path = args[1]
	}
}
