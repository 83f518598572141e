package analyses

import (
	"testing"
	"time"
)

func TestCacheHitWithinTTL(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(CacheTTL, func() time.Time { return now })

	analysis := ResumeAnalysis{OverallScore: 72}
	cache.Set("key-1", analysis)

	now = now.Add(CacheTTL - time.Second)
	entry, ok := cache.Get("key-1")
	if !ok {
		t.Fatalf("expected a hit within the TTL")
	}
	if entry.Analysis.OverallScore != 72 {
		t.Fatalf("expected cached analysis, got %+v", entry.Analysis)
	}
}

func TestCacheMissAfterTTL(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(CacheTTL, func() time.Time { return now })

	cache.Set("key-1", ResumeAnalysis{OverallScore: 72})

	now = now.Add(CacheTTL + time.Second)
	if _, ok := cache.Get("key-1"); ok {
		t.Fatalf("expected a miss after the TTL")
	}
}

func TestCacheMissUnknownKey(t *testing.T) {
	cache := NewCache()
	if _, ok := cache.Get("nothing"); ok {
		t.Fatalf("expected a miss for an unknown key")
	}
}

func TestCacheSetOverwritesAndRefreshes(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	cache := NewCacheWithClock(CacheTTL, func() time.Time { return now })

	cache.Set("key-1", ResumeAnalysis{OverallScore: 40})

	// A rewrite just before expiry restarts the clock for the entry.
	now = now.Add(CacheTTL - time.Second)
	cache.Set("key-1", ResumeAnalysis{OverallScore: 90})

	now = now.Add(CacheTTL - time.Second)
	entry, ok := cache.Get("key-1")
	if !ok {
		t.Fatalf("expected the refreshed entry to still be live")
	}
	if entry.Analysis.OverallScore != 90 {
		t.Fatalf("expected the overwritten analysis, got %+v", entry.Analysis)
	}
}
