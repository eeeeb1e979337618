package folio

import (
	"sync"
	"time"
)

// SiteCache keeps the last loaded Site for the preview server and reloads it
// from disk once the TTL expires, so edits show up without a restart.
type SiteCache struct {
	mu      sync.RWMutex
	site    *Site
	fetched time.Time
	ttl     time.Duration
	load    func() (*Site, error)
}

// NewSiteCache creates a SiteCache backed by load.
func NewSiteCache(load func() (*Site, error), ttl time.Duration) *SiteCache {
	return &SiteCache{load: load, ttl: ttl}
}

func (c *SiteCache) valid() bool {
	return c.site != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *SiteCache) Invalidate() {
	c.mu.Lock()
	c.site = nil
	c.mu.Unlock()
}

// Get returns the cached Site after ensuring it is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *SiteCache) Get() (*Site, error) {
	c.mu.RLock()
	if c.valid() {
		site := c.site
		c.mu.RUnlock()
		return site, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.site, nil
	}
	site, err := c.load()
	if err != nil {
		return nil, err
	}
	c.site = site
	c.fetched = time.Now()
	return site, nil
}
