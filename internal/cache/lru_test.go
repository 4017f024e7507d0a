// Reelbase - Media Catalog Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelbase

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string](3, 0)

	cache.Add("a", "1")
	cache.Add("b", "2")
	cache.Add("c", "3")

	for key, want := range map[string]string{"a": "1", "b": "2", "c": "3"} {
		got, found := cache.Get(key)
		if !found {
			t.Errorf("Expected to find key %q", key)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}

	if size := cache.Stats().Size; size != 3 {
		t.Errorf("Expected size 3, got %d", size)
	}
}

func TestLRU_Eviction(t *testing.T) {
	cache := NewLRU[int](3, 0)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	// Access 'a' to make it most recently used
	cache.Get("a")

	// Should evict 'b'
	cache.Add("d", 4)

	if _, found := cache.Get("b"); found {
		t.Error("Expected 'b' to be evicted")
	}
	for _, key := range []string{"a", "c", "d"} {
		if _, found := cache.Get(key); !found {
			t.Errorf("Expected %q to be present", key)
		}
	}
	if s := cache.Stats(); s.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", s.Evictions)
	}
}

func TestLRU_UpdateMovesToFront(t *testing.T) {
	cache := NewLRU[int](2, 0)

	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("a", 10)
	cache.Add("c", 3)

	if _, found := cache.Get("b"); found {
		t.Error("Expected 'b' to be evicted after 'a' was refreshed")
	}
	if v, _ := cache.Get("a"); v != 10 {
		t.Errorf("Expected updated value 10, got %d", v)
	}
}

func TestLRU_TTLExpiration(t *testing.T) {
	cache := NewLRU[string](10, 50*time.Millisecond)

	cache.Add("a", "x")
	if _, found := cache.Get("a"); !found {
		t.Error("Expected to find key 'a' immediately")
	}

	time.Sleep(60 * time.Millisecond)

	if _, found := cache.Get("a"); found {
		t.Error("Expected 'a' to be expired")
	}
	s := cache.Stats()
	if s.Size != 0 {
		t.Errorf("Expected expired entry to be dropped on read, size %d", s.Size)
	}
	if s.Hits != 1 || s.Misses != 1 {
		t.Errorf("Expected 1 hit and 1 miss, got %+v", s)
	}
}

func TestLRU_NoTTLNeverExpires(t *testing.T) {
	cache := NewLRU[string](10, 0)
	cache.Add("a", "x")

	time.Sleep(10 * time.Millisecond)

	if _, found := cache.Get("a"); !found {
		t.Error("Expected 'a' to be kept without a TTL")
	}
}

func TestLRU_AddRefreshesTTL(t *testing.T) {
	cache := NewLRU[int](10, 200*time.Millisecond)
	cache.Add("a", 1)

	time.Sleep(120 * time.Millisecond)
	cache.Add("a", 2)
	time.Sleep(120 * time.Millisecond)

	if v, found := cache.Get("a"); !found || v != 2 {
		t.Errorf("Expected refreshed a=2, got %d %v", v, found)
	}
}

func TestLRU_Purge(t *testing.T) {
	cache := NewLRU[int](10, 0)
	cache.Add("a", 1)
	cache.Add("b", 2)
	cache.Add("c", 3)

	cache.Get("b")
	if n := cache.Purge(); n != 3 {
		t.Errorf("Expected Purge to drop 3 entries, dropped %d", n)
	}
	if size := cache.Stats().Size; size != 0 {
		t.Errorf("Expected empty cache, got size %d", size)
	}

	// Purge keeps counters
	s := cache.Stats()
	if s.Hits != 1 {
		t.Errorf("Expected 1 hit after purge, got %d", s.Hits)
	}

	// List is usable after purge
	cache.Add("d", 4)
	if v, found := cache.Get("d"); !found || v != 4 {
		t.Errorf("Expected d=4 after purge, got %d %v", v, found)
	}
}

func TestLRU_Stats(t *testing.T) {
	cache := NewLRU[int](0, 0)

	cache.Add("a", 1)
	cache.Get("a")
	cache.Get("a")
	cache.Get("missing")

	s := cache.Stats()
	if s.Hits != 2 || s.Misses != 1 || s.Size != 1 {
		t.Errorf("Unexpected stats %+v", s)
	}
	if s.Capacity != DefaultCapacity {
		t.Errorf("Expected default capacity %d, got %d", DefaultCapacity, s.Capacity)
	}
}

func TestLRU_Concurrent(t *testing.T) {
	cache := NewLRU[int](100, 0)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := string(rune('a' + (id+j)%26))
				cache.Add(key, j)
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if size := cache.Stats().Size; size > 26 {
		t.Errorf("Expected at most 26 keys, got %d", size)
	}
}
