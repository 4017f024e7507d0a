// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package results

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	ctx := context.Background()

	for i, msg := range []string{"first", "second", "third"} {
		if err := c.Write(ctx, i+1, msg); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}

	if c.Len() != 3 {
		t.Errorf("expected 3 records, got %d", c.Len())
	}
	if got := strings.Join(c.Messages(), ","); got != "first,second,third" {
		t.Errorf("unexpected messages %q", got)
	}

	records := c.Records()
	records[0].Message = "mutated"
	if c.Records()[0].Message != "first" {
		t.Error("Records must return a copy")
	}
}

func TestCollector_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCollector()
	if err := c.Write(ctx, 1, "x"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if c.Len() != 0 {
		t.Error("cancelled write must not be recorded")
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		indent   bool
		contains []string
	}{
		{"compact", false, []string{
			`[{"id":1,"message":"Query result: []"},{"id":2,"message":"success -> Alpha was added as favourite"}]`,
		}},
		{"indented", true, []string{
			"[\n  {\n",
			`"message": "success -> Alpha was added as favourite"`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.json")
			w := NewJSONWriter(path, tt.indent)
			ctx := context.Background()

			if err := w.Write(ctx, 1, "Query result: []"); err != nil {
				t.Fatal(err)
			}
			if err := w.Write(ctx, 2, "success -> Alpha was added as favourite"); err != nil {
				t.Fatal(err)
			}
			if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
				t.Error("file must not exist before Close")
			}
			if err := w.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(string(data), want) {
					t.Errorf("output missing %q:\n%s", want, data)
				}
			}

			var decoded []Record
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("output is not valid JSON: %v", err)
			}
			if len(decoded) != 2 || decoded[1].ID != 2 {
				t.Errorf("unexpected decoded records %+v", decoded)
			}
		})
	}
}

func TestJSONWriter_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	w := NewJSONWriter(path, false)
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]\n" {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestJSONWriter_CloseSemantics(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.json")
	w := NewJSONWriter(path, false)
	if w.Path() != path {
		t.Errorf("unexpected path %q", w.Path())
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
	if err := w.Write(context.Background(), 1, "late"); err == nil {
		t.Error("expected error writing after Close")
	}
}

func TestJSONWriter_BadPath(t *testing.T) {
	t.Parallel()

	w := NewJSONWriter(filepath.Join(t.TempDir(), "missing", "out.json"), false)
	if err := w.Close(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestJSONWriter_FailedCloseIsRetried(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "out.json")
	w := NewJSONWriter(path, false)
	if err := w.Write(context.Background(), 1, "Query result: []"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := w.Close(); err == nil {
		t.Fatal("expected first Close to fail")
	}
	if err := w.Close(); err == nil {
		t.Error("expected second Close to report the failure again")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close after creating directory: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(data), `[{"id":1,"message":"Query result: []"}]`+"\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
	if err := w.Write(context.Background(), 2, "late"); err == nil {
		t.Error("expected Write after successful Close to fail")
	}
}
