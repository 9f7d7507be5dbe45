// Package cache implements a bounded TTL cache with strict LRU eviction,
// used for model responses, chat metadata and coerced settings.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

type entry struct {
	key          string
	value        any
	timestamp    time.Time
	ttl          time.Duration
	accessCount  int64
	lastAccessed time.Time
}

type Cache struct {
	mu         sync.Mutex
	maxSize    int
	defaultTTL time.Duration

	index map[string]*list.Element
	// order keeps least-recently-used entries at the back.
	order *list.List

	stopOnce sync.Once
	stop     chan struct{}
}

// New creates a cache holding at most maxSize entries. Entries expire after
// defaultTTL unless SetWithTTL overrides it. When sweepInterval is positive a
// background goroutine periodically removes expired entries; expired entries
// are also dropped lazily on Get either way.
func New(maxSize int, defaultTTL, sweepInterval time.Duration) *Cache {
	c := &Cache{
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
		index:      make(map[string]*list.Element),
		order:      list.New(),
		stop:       make(chan struct{}),
	}
	if sweepInterval > 0 {
		go c.sweepLoop(sweepInterval)
	}
	return c
}

// Key hashes the given parts into a stable cache key.
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached value. An entry past its TTL counts as absent and is
// removed. A hit moves the entry to the front of the LRU order.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return nil, false
	}
	e := el.Value.(*entry)
	if c.expired(e, time.Now()) {
		c.removeLocked(el)
		return nil, false
	}
	e.accessCount++
	e.lastAccessed = time.Now()
	c.order.MoveToFront(el)
	return e.value, true
}

// Set stores the value with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores the value. When the cache is full and the key is new, the
// least-recently-used entry is evicted first.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	if el, ok := c.index[key]; ok {
		e := el.Value.(*entry)
		e.value = value
		e.timestamp = now
		e.ttl = ttl
		e.lastAccessed = now
		c.order.MoveToFront(el)
		return
	}

	if c.maxSize > 0 && c.order.Len() >= c.maxSize {
		if back := c.order.Back(); back != nil {
			c.removeLocked(back)
		}
	}

	e := &entry{
		key:          key,
		value:        value,
		timestamp:    now,
		ttl:          ttl,
		lastAccessed: now,
	}
	c.index[key] = c.order.PushFront(e)
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.index[key]; ok {
		c.removeLocked(el)
	}
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stop terminates the background sweeper. Safe to call more than once.
func (c *Cache) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *Cache) expired(e *entry, now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.timestamp) > e.ttl
}

func (c *Cache) removeLocked(el *list.Element) {
	e := el.Value.(*entry)
	c.order.Remove(el)
	delete(c.index, e.key)
}

func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

func (c *Cache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if c.expired(el.Value.(*entry), now) {
			c.removeLocked(el)
		}
		el = prev
	}
}
