// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package recommend

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tomtom215/reelbase/internal/catalog"
	"github.com/tomtom215/reelbase/internal/models"
)

// mockAlgorithm implements Algorithm for testing.
type mockAlgorithm struct {
	name    string
	label   string
	premium bool
	result  Result
	err     error
	calls   int
}

func (m *mockAlgorithm) Name() string      { return m.name }
func (m *mockAlgorithm) Label() string     { return m.label }
func (m *mockAlgorithm) PremiumOnly() bool { return m.premium }

func (m *mockAlgorithm) Recommend(_ context.Context, _ *catalog.Catalog, _ Request) (Result, error) {
	m.calls++
	return m.result, m.err
}

func newTestEngine(algs ...Algorithm) *Engine {
	e := NewEngine(catalog.New(catalog.Source{}), zerolog.New(io.Discard))
	for _, a := range algs {
		e.RegisterAlgorithm(a)
	}
	return e
}

func TestEngine_Recommend(t *testing.T) {
	t.Parallel()

	standard := models.NewUser("std", models.SubscriptionStandard, nil, nil)
	premium := models.NewUser("pro", models.SubscriptionPremium, nil, nil)

	tests := []struct {
		name    string
		alg     *mockAlgorithm
		user    *models.User
		want    string
		wantErr string
		calls   int
	}{
		{
			name:  "single title",
			alg:   &mockAlgorithm{name: "standard", label: "StandardRecommendation", result: Result{Titles: []string{"Alpha"}}},
			user:  standard,
			want:  "StandardRecommendation result: Alpha",
			calls: 1,
		},
		{
			name:  "list",
			alg:   &mockAlgorithm{name: "search", label: "SearchRecommendation", premium: true, result: Result{Titles: []string{"A", "B"}, List: true}},
			user:  premium,
			want:  "SearchRecommendation result: [A, B]",
			calls: 1,
		},
		{
			name:    "premium gate",
			alg:     &mockAlgorithm{name: "search", label: "SearchRecommendation", premium: true, result: Result{Titles: []string{"A"}, List: true}},
			user:    standard,
			wantErr: "SearchRecommendation cannot be applied!",
		},
		{
			name:    "unknown user",
			alg:     &mockAlgorithm{name: "standard", label: "StandardRecommendation", result: Result{Titles: []string{"A"}}},
			user:    nil,
			wantErr: "StandardRecommendation cannot be applied!",
		},
		{
			name:    "no candidate",
			alg:     &mockAlgorithm{name: "favorite", label: "FavoriteRecommendation", premium: true},
			user:    premium,
			wantErr: "FavoriteRecommendation cannot be applied!",
			calls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEngine(tt.alg)
			got, err := e.Recommend(context.Background(), tt.alg.name, Request{User: tt.user})

			if tt.wantErr != "" {
				if !errors.Is(err, ErrNotApplicable) {
					t.Fatalf("expected ErrNotApplicable, got %v", err)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("got %q, want %q", err.Error(), tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
			}
			if tt.alg.calls != tt.calls {
				t.Errorf("expected %d algorithm calls, got %d", tt.calls, tt.alg.calls)
			}
		})
	}
}

func TestEngine_UnknownStrategy(t *testing.T) {
	t.Parallel()

	e := newTestEngine()
	_, err := e.Recommend(context.Background(), "telepathy", Request{})
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestEngine_AlgorithmError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	e := newTestEngine(&mockAlgorithm{name: "standard", label: "StandardRecommendation", err: boom})
	_, err := e.Recommend(context.Background(), "standard", Request{User: models.NewUser("u", models.SubscriptionStandard, nil, nil)})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped algorithm error, got %v", err)
	}
	if errors.Is(err, ErrNotApplicable) {
		t.Error("algorithm failure must not read as not applicable")
	}
}

func TestEngine_RegisterAlgorithm(t *testing.T) {
	t.Parallel()

	first := &mockAlgorithm{name: "standard", label: "Old", result: Result{Titles: []string{"A"}}}
	second := &mockAlgorithm{name: "standard", label: "StandardRecommendation", result: Result{Titles: []string{"B"}}}
	other := &mockAlgorithm{name: "popular", label: "PopularRecommendation"}

	e := newTestEngine(first, other, second)

	names := e.Algorithms()
	if len(names) != 2 || names[0] != "standard" || names[1] != "popular" {
		t.Errorf("unexpected registration order %v", names)
	}

	got, err := e.Recommend(context.Background(), "standard", Request{User: models.NewUser("u", models.SubscriptionStandard, nil, nil)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "StandardRecommendation result: B" {
		t.Errorf("expected replacement algorithm to serve, got %q", got)
	}
}
