// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package config

import (
	"errors"
	"fmt"
)

var (
	validLogLevels = map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	validLogFormats = map[string]bool{
		"json":    true,
		"console": true,
	}
)

// Validate checks that required configuration is present and valid.
// All problems are reported together.
func (c *Config) Validate() error {
	return errors.Join(
		c.validatePaths(),
		c.validateEngine(),
		c.validateMetrics(),
		c.validateLogging(),
	)
}

func (c *Config) validatePaths() error {
	if c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required")
	}
	if c.Output.Path == "" {
		return fmt.Errorf("OUTPUT_PATH is required")
	}
	if c.Dataset.Path == c.Output.Path {
		return fmt.Errorf("OUTPUT_PATH must differ from DATASET_PATH")
	}
	return nil
}

func (c *Config) validateEngine() error {
	if c.Engine.CacheEnabled && c.Engine.CacheCapacity <= 0 {
		return fmt.Errorf("ENGINE_CACHE_CAPACITY must be positive when the cache is enabled, got %d", c.Engine.CacheCapacity)
	}
	if c.Engine.CacheTTL < 0 {
		return fmt.Errorf("ENGINE_CACHE_TTL must not be negative, got %s", c.Engine.CacheTTL)
	}
	return nil
}

func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && c.Metrics.TextfilePath == "" {
		return fmt.Errorf("METRICS_TEXTFILE_PATH is required when METRICS_ENABLED=true")
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
