package cache

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				time.Sleep(150 * time.Millisecond)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "zero ttl never expires",
			capacity: 2,
			ttl:      0,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				time.Sleep(20 * time.Millisecond)
				if _, ok := c.Get("a"); !ok {
					t.Errorf("expected key to survive without ttl")
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				c.Get("a")
				c.Set("c", []byte("3"))
				if _, ok := c.Get("b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get("a"); !ok || string(v) != "1" {
					t.Errorf("expected a=1, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      300 * time.Millisecond,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				time.Sleep(200 * time.Millisecond)
				c.Set("a", []byte("2"))
				time.Sleep(200 * time.Millisecond)
				if v, ok := c.Get("a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes key",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Len() != 0 {
					t.Errorf("expected empty cache, len=%d", c.Len())
				}
			},
		},
		{
			name:     "zero capacity holds one key",
			capacity: 0,
			ttl:      time.Second,
			actions: func(c *LRUCache, t *testing.T) {
				c.Set("a", []byte("1"))
				c.Set("b", []byte("2"))
				if c.Len() != 1 {
					t.Errorf("expected one key, len=%d", c.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLRUCache(tt.name, tt.capacity, tt.ttl)
			tt.actions(c, t)
		})
	}
}

func TestLRUCache_Metrics(t *testing.T) {
	c := NewLRUCache("metrics", 2, time.Second)

	c.Set("a", []byte("1"))
	c.Get("a")
	c.Get("a")
	c.Get("b")

	if hits := testutil.ToFloat64(cacheRequests.WithLabelValues("metrics", "hit")); hits != 2 {
		t.Errorf("expected 2 hits, got %v", hits)
	}
	if misses := testutil.ToFloat64(cacheRequests.WithLabelValues("metrics", "miss")); misses != 1 {
		t.Errorf("expected 1 miss, got %v", misses)
	}
}
