package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheLRUEviction(t *testing.T) {
	c := New(3, time.Minute, 0)
	defer c.Stop()

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("key-%d", i), i)
	}

	// key-0 becomes most recently used
	if _, ok := c.Get("key-0"); !ok {
		t.Fatalf("expected key-0 to be present")
	}

	// inserting a 4th key evicts the least recently used (key-1)
	c.Set("key-3", 3)

	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
	if _, ok := c.Get("key-1"); ok {
		t.Fatalf("expected key-1 to be evicted")
	}
	for _, key := range []string{"key-0", "key-2", "key-3"} {
		if _, ok := c.Get(key); !ok {
			t.Fatalf("expected %s to survive eviction", key)
		}
	}
}

func TestCacheSetExistingKeyDoesNotEvict(t *testing.T) {
	c := New(2, time.Minute, 0)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	v, ok := c.Get("a")
	if !ok || v.(int) != 3 {
		t.Fatalf("expected updated value 3, got %v (present=%v)", v, ok)
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New(10, time.Minute, 0)
	defer c.Stop()

	c.SetWithTTL("short", "value", 20*time.Millisecond)
	if _, ok := c.Get("short"); !ok {
		t.Fatalf("expected fresh entry to be present")
	}

	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Fatalf("expected expired entry to be absent")
	}
	if c.Len() != 0 {
		t.Fatalf("expected lazy removal of expired entry, got %d entries", c.Len())
	}
}

func TestCacheBackgroundSweep(t *testing.T) {
	c := New(10, 10*time.Millisecond, 20*time.Millisecond)
	defer c.Stop()

	c.Set("a", 1)
	c.Set("b", 2)

	time.Sleep(60 * time.Millisecond)

	if c.Len() != 0 {
		t.Fatalf("expected sweeper to remove expired entries, got %d", c.Len())
	}
}

func TestKeyIsStableAndDistinct(t *testing.T) {
	k1 := Key("conversation", "Qwen3 0.6b", "false")
	k2 := Key("conversation", "Qwen3 0.6b", "false")
	k3 := Key("conversation", "Qwen3 0.6b", "true")

	if k1 != k2 {
		t.Fatalf("expected identical inputs to hash identically")
	}
	if k1 == k3 {
		t.Fatalf("expected the web flag to change the key")
	}
}
