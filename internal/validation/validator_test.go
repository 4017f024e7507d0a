// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package validation

import (
	"strings"
	"sync"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

type testSeason struct {
	Duration int `json:"duration" validate:"gte=0"`
}

type testItem struct {
	Title   string       `json:"title" validate:"required"`
	Kind    string       `json:"kind" validate:"omitempty,oneof=movie show"`
	Seasons []testSeason `json:"seasons" validate:"dive"`
	Name    string       `json:"name,omitempty" validate:"omitempty,min=3,max=5"`
	Hidden  string       `json:"-"`
	Plain   int          `validate:"lte=10"`
}

type testDocument struct {
	Items []testItem `json:"items" validate:"dive"`
}

func TestValidateStruct_Valid(t *testing.T) {
	doc := testDocument{Items: []testItem{
		{Title: "Alpha", Kind: "movie"},
		{Title: "Beta", Kind: "show", Seasons: []testSeason{{Duration: 40}}},
	}}
	if err := ValidateStruct(&doc); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		item     testItem
		wantPath string
		wantTag  string
		wantMsg  string
	}{
		{
			name:     "required",
			item:     testItem{},
			wantPath: "items[0].title",
			wantTag:  "required",
			wantMsg:  "items[0].title is required",
		},
		{
			name:     "oneof",
			item:     testItem{Title: "A", Kind: "book"},
			wantPath: "items[0].kind",
			wantTag:  "oneof",
			wantMsg:  "items[0].kind must be one of: movie show",
		},
		{
			name:     "nested gte",
			item:     testItem{Title: "A", Seasons: []testSeason{{Duration: 1}, {Duration: -5}}},
			wantPath: "items[0].seasons[1].duration",
			wantTag:  "gte",
			wantMsg:  "items[0].seasons[1].duration must be greater than or equal to 0",
		},
		{
			name:     "string min",
			item:     testItem{Title: "A", Name: "ab"},
			wantPath: "items[0].name",
			wantTag:  "min",
			wantMsg:  "items[0].name must be at least 3 characters",
		},
		{
			name:     "untagged field keeps go name",
			item:     testItem{Title: "A", Plain: 11},
			wantPath: "items[0].Plain",
			wantTag:  "lte",
			wantMsg:  "items[0].Plain must be less than or equal to 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&testDocument{Items: []testItem{tt.item}})
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			got := errs[0]
			if got.Path() != tt.wantPath {
				t.Errorf("Path() = %q, want %q", got.Path(), tt.wantPath)
			}
			if got.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", got.Tag(), tt.wantTag)
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	verr := ValidateStruct(&testDocument{Items: []testItem{{}, {Title: "B", Kind: "book"}}})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(verr.Errors()))
	}
	msg := verr.Error()
	if !strings.Contains(msg, "items[0].title is required") || !strings.Contains(msg, "; items[1].kind") {
		t.Errorf("unexpected combined message %q", msg)
	}
}

func TestStructValidationError_Add(t *testing.T) {
	verr := &StructValidationError{}
	if !verr.Empty() {
		t.Error("new error set should be empty")
	}
	if verr.Error() != "validation failed" {
		t.Errorf("unexpected empty message %q", verr.Error())
	}

	verr.Add("movies[1].title", "unique", "duplicates an earlier title")

	if verr.Empty() {
		t.Fatal("expected one error after Add")
	}
	e := verr.Errors()[0]
	if e.Field() != "title" || e.Path() != "movies[1].title" || e.Tag() != "unique" {
		t.Errorf("unexpected error fields: %q %q %q", e.Field(), e.Path(), e.Tag())
	}
	if e.Error() != "movies[1].title duplicates an earlier title" {
		t.Errorf("unexpected message %q", e.Error())
	}
}

func TestValidateStruct_NotAStruct(t *testing.T) {
	verr := ValidateStruct("not a struct")
	if verr == nil {
		t.Fatal("expected error for non-struct input")
	}
	if verr.Errors()[0].Tag() != "unknown" {
		t.Errorf("expected unknown tag, got %q", verr.Errors()[0].Tag())
	}
}

func TestValidateStruct_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(valid bool) {
			defer wg.Done()
			item := testItem{}
			if valid {
				item.Title = "ok"
			}
			verr := ValidateStruct(&testDocument{Items: []testItem{item}})
			if valid != (verr == nil) {
				t.Errorf("valid=%v but got %v", valid, verr)
			}
		}(i%2 == 0)
	}
	wg.Wait()
}
