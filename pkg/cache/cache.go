package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "orderflow",
	Subsystem: "cache",
	Name:      "requests_total",
	Help:      "Total number of cache lookups by result.",
}, []string{"cache", "result"})

// LRUCache потокобезопасный LRU с TTL. Нулевой ttl отключает истечение.
type LRUCache struct {
	lru    *expirable.LRU[string, []byte]
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewLRUCache создаёт кэш; name попадает в метку метрик.
func NewLRUCache(name string, capacity int, ttl time.Duration) *LRUCache {
	if capacity < 1 {
		capacity = 1
	}
	return &LRUCache{
		lru:    expirable.NewLRU[string, []byte](capacity, nil, ttl),
		hits:   cacheRequests.WithLabelValues(name, "hit"),
		misses: cacheRequests.WithLabelValues(name, "miss"),
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	value, ok := c.lru.Get(key)
	if !ok {
		c.misses.Inc()
		return nil, false
	}
	c.hits.Inc()
	return value, true
}

// Set перезаписывает значение и продлевает TTL ключа.
func (c *LRUCache) Set(key string, value []byte) {
	c.lru.Add(key, value)
}

func (c *LRUCache) Delete(key string) {
	c.lru.Remove(key)
}

func (c *LRUCache) Len() int {
	return c.lru.Len()
}
