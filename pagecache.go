package vectorsite

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// PageCache holds rendered page bodies keyed by request path.
type PageCache struct {
	c *cache.Cache
}

// NewPageCache creates a PageCache whose entries expire after ttl.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{c: cache.New(ttl, 2*ttl)}
}

// Get returns the cached body for key.
func (p *PageCache) Get(key string) ([]byte, bool) {
	v, found := p.c.Get(key)
	if !found {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

// Set stores body under key with the default expiration.
func (p *PageCache) Set(key string, body []byte) {
	p.c.Set(key, body, cache.DefaultExpiration)
}

// Flush drops every cached page.
func (p *PageCache) Flush() {
	p.c.Flush()
}

// Len reports the number of cached pages, including expired ones not yet evicted.
func (p *PageCache) Len() int {
	return p.c.ItemCount()
}
