// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// initBuffer points the global logger at a buffer and restores the
// defaults when the test ends.
func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cfg.Output = &buf
	Init(cfg)
	t.Cleanup(func() { Init(DefaultConfig()) })
	return &buf
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	buf := initBuffer(t, Config{Level: "debug", Format: "json", Timestamp: true})

	Info().Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
	if !strings.Contains(output, `"time"`) {
		t.Errorf("expected timestamp field, got: %s", output)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("expected global level debug, got %v", zerolog.GlobalLevel())
	}
}

func TestInit_LevelFilters(t *testing.T) {
	buf := initBuffer(t, Config{Level: "error"})

	Info().Msg("dropped")
	Err(errors.New("kept")).Msg("failure")

	output := buf.String()
	if strings.Contains(output, "dropped") {
		t.Errorf("info line should be filtered at error level: %s", output)
	}
	if !strings.Contains(output, "failure") {
		t.Errorf("expected error line in output: %s", output)
	}
}

func TestInit_Caller(t *testing.T) {
	buf := initBuffer(t, Config{Level: "info", Caller: true})

	Info().Msg("with caller")

	if !strings.Contains(buf.String(), `"caller"`) {
		t.Errorf("expected caller field in output: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConsoleFormat(t *testing.T) {
	buf := initBuffer(t, Config{Level: "info", Format: "console"})

	Info().Msg("console test")

	output := buf.String()
	if strings.Contains(output, `"level"`) {
		t.Errorf("expected console format (not JSON): %s", output)
	}
	if !strings.Contains(output, "console test") {
		t.Errorf("expected message in output: %s", output)
	}
}

func TestErr(t *testing.T) {
	buf := initBuffer(t, Config{Level: "info"})

	Err(errors.New("dataset missing")).Msg("error occurred")

	if !strings.Contains(buf.String(), `"error":"dataset missing"`) {
		t.Errorf("expected error in output: %s", buf.String())
	}
}

func TestLogger(t *testing.T) {
	buf := initBuffer(t, Config{Level: "info"})

	logger := Logger()
	logger.Info().Str("key", "value").Msg("via copy")

	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Errorf("expected field from copied logger: %s", buf.String())
	}
}
