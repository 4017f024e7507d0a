// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

// Package results provides the sinks that receive one record per action.
//
// Collector keeps records in memory. JSONWriter buffers records and writes
// them as a single JSON array when closed:
//
//	[
//	  {"id": 1, "message": "success -> Alpha was viewed with total views of 1"}
//	]
package results

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Record is one output entry.
type Record struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

// Collector is an in-memory sink. It is safe for concurrent use.
type Collector struct {
	mu      sync.Mutex
	records []Record
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Write appends a record.
func (c *Collector) Write(ctx context.Context, id int, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, Record{ID: id, Message: message})
	return nil
}

// Records returns a copy of the records in write order.
func (c *Collector) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Messages returns the messages in write order.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.Message
	}
	return out
}

// Len returns the number of records.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// JSONWriter writes records to a file as a JSON array on Close.
type JSONWriter struct {
	Collector

	path   string
	indent bool
	closed bool
}

// NewJSONWriter creates a writer for path. With indent set the array is
// pretty-printed with two spaces.
func NewJSONWriter(path string, indent bool) *JSONWriter {
	return &JSONWriter{path: path, indent: indent}
}

// Path returns the output path.
func (w *JSONWriter) Path() string {
	return w.path
}

// Write buffers a record. Writing after Close fails.
func (w *JSONWriter) Write(ctx context.Context, id int, message string) error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return fmt.Errorf("write record %d: writer closed", id)
	}
	return w.Collector.Write(ctx, id, message)
}

// Close encodes the buffered records and writes the file. An empty run
// produces "[]". The file ends with a newline. Once Close succeeds further
// calls are no-ops; a failed Close leaves the writer open so it can be retried.
func (w *JSONWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	records := w.records
	if records == nil {
		records = []Record{}
	}

	// Result lines contain "->", which must not be HTML-escaped.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0o600); err != nil { //nolint:gosec // output path comes from trusted configuration
		return fmt.Errorf("write results: %w", err)
	}
	w.closed = true
	return nil
}
