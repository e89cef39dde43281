package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/epsilon003/Illegally-Blonde/internal/extract"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10, time.Minute)

	record := &extract.CaseRecord{Petitioner: "John Doe", CaseStatus: "Pending"}
	key := Key(extract.GenerateQueryHash("CS", "1234", 2023, "Delhi"))

	if err := c.Set(key, record); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := c.Get(key)
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.Petitioner != "John Doe" {
		t.Errorf("expected petitioner John Doe, got %q", got.Petitioner)
	}
}

func TestCacheMiss(t *testing.T) {
	c := NewCache(10, time.Minute)

	if _, found := c.Get(Key("missing")); found {
		t.Error("expected cache miss")
	}
}

func TestCacheStats(t *testing.T) {
	c := NewCache(10, time.Minute)

	key := Key("abc")
	c.Set(key, &extract.CaseRecord{})
	c.Get(key)
	c.Get(Key("missing"))

	stats := c.Stats()
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Size != 1 {
		t.Errorf("expected size 1, got %d", stats.Size)
	}
}

func TestCacheEvictsAtCapacity(t *testing.T) {
	c := NewCache(3, time.Minute)

	for i := 0; i < 5; i++ {
		c.Set(Key(fmt.Sprintf("k%d", i)), &extract.CaseRecord{})
	}

	if size := c.Stats().Size; size > 3 {
		t.Errorf("expected at most 3 entries, got %d", size)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(10, time.Minute)

	c.Set(Key("abc"), &extract.CaseRecord{})
	c.Clear()

	if _, found := c.Get(Key("abc")); found {
		t.Error("expected cleared cache to miss")
	}
	if size := c.Stats().Size; size != 0 {
		t.Errorf("expected size 0 after clear, got %d", size)
	}
}

func TestCacheKey(t *testing.T) {
	if Key("deadbeef") != "case:deadbeef" {
		t.Errorf("unexpected key format: %q", Key("deadbeef"))
	}
}
