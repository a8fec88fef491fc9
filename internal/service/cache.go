package service

import (
	"sync"
	"time"

	"github.com/spedire/rate-service/internal/domain/model"
	"github.com/spedire/rate-service/internal/metrics"
)

// quoteCache is a thread-safe LRU cache with TTL expiration for assembled
// quotes. Quotes are deterministic for a fixed tariff snapshot, so entries
// stay valid until the snapshot is replaced; TariffService clears the cache
// on every replacement and the TTL is only a backstop.
type quoteCache struct {
	mu       sync.RWMutex
	capacity int
	ttl      time.Duration
	items    map[string]*quoteEntry
	head     *quoteEntry
	tail     *quoteEntry
}

type quoteEntry struct {
	key       string
	value     model.Quote
	expiresAt time.Time
	prev      *quoteEntry
	next      *quoteEntry
}

// NewQuoteCache creates a quote cache with the given capacity and TTL.
func NewQuoteCache(capacity int, ttl time.Duration) *quoteCache {
	return &quoteCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*quoteEntry, capacity),
	}
}

// Get returns the cached quote for key if present and not expired.
func (c *quoteCache) Get(key string) (model.Quote, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		metrics.RecordCacheOperation("get", "miss")
		return model.Quote{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if _, still := c.items[key]; still {
			c.removeEntry(entry)
		}
		c.mu.Unlock()
		metrics.RecordCacheOperation("get", "expired")
		return model.Quote{}, false
	}

	c.mu.Lock()
	c.moveToFront(entry)
	c.mu.Unlock()

	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set stores a quote under key, evicting the least recently used entry when
// the cache is full.
func (c *quoteCache) Set(key string, value model.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &quoteEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Clear drops every entry. Called on tariff snapshot replacement.
func (c *quoteCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*quoteEntry, c.capacity)
	c.head = nil
	c.tail = nil
}

// Len returns the number of live entries.
func (c *quoteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *quoteCache) addToFront(entry *quoteEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *quoteCache) moveToFront(entry *quoteEntry) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *quoteCache) removeEntry(entry *quoteEntry) {
	if entry == nil {
		return
	}
	c.unlink(entry)
	delete(c.items, entry.key)
}

func (c *quoteCache) unlink(entry *quoteEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}
