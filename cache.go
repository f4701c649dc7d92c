package solestore

import (
	"sync"
	"time"

	"github.com/kmwangi/solestore/catalog"
)

// CatalogCache is a page-layer TTL cache of resolved, validated category
// listings. The materialization pipeline itself never caches; this sits
// in front of it so concurrent page requests don't trigger a directory
// scan each.
type CatalogCache struct {
	mu      sync.RWMutex
	entries map[catalog.Category]cacheEntry
	ttl     time.Duration
	list    func(catalog.Category) []catalog.Product
}

type cacheEntry struct {
	products []catalog.Product
	fetched  time.Time
}

// NewCatalogCache creates a cache backed by the given listing function.
func NewCatalogCache(list func(catalog.Category) []catalog.Product, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		entries: make(map[catalog.Category]cacheEntry),
		ttl:     ttl,
		list:    list,
	}
}

// Get returns the cached listing for a category, refreshing it when the
// entry is missing or stale.
func (c *CatalogCache) Get(cat catalog.Category) []catalog.Product {
	c.mu.RLock()
	entry, ok := c.entries[cat]
	c.mu.RUnlock()
	if ok && time.Since(entry.fetched) < c.ttl {
		return entry.products
	}

	products := c.list(cat)
	c.mu.Lock()
	c.entries[cat] = cacheEntry{products: products, fetched: time.Now()}
	c.mu.Unlock()
	return products
}

// Invalidate clears every entry so the next read re-resolves. Called
// after admin writes.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[catalog.Category]cacheEntry)
	c.mu.Unlock()
}
