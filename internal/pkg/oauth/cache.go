package oauth

import (
	"sync"
	"time"
)

// maxEntryTTL caps how long a verified identity is kept, even when the
// provider token lives longer.
const maxEntryTTL = 5 * time.Minute

type cacheEntry struct {
	info   GoogleInformation
	expiry time.Time
}

// UserInfoCache memoizes identity-API lookups keyed by access token. Each
// entry carries its own expiry. The clock is injected so the cache is
// testable without wall-clock dependence.
type UserInfoCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func NewUserInfoCache(now func() time.Time) *UserInfoCache {
	return &UserInfoCache{
		entries: make(map[string]cacheEntry),
		now:     now,
	}
}

func (c *UserInfoCache) Get(token string) (GoogleInformation, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()

	if !ok {
		return GoogleInformation{}, false
	}
	if !c.now().Before(entry.expiry) {
		c.mu.Lock()
		delete(c.entries, token)
		c.mu.Unlock()
		return GoogleInformation{}, false
	}
	return entry.info, true
}

// Put stores info until tokenExpiry, capped at maxEntryTTL from now.
func (c *UserInfoCache) Put(token string, info GoogleInformation, tokenExpiry time.Time) {
	expiry := c.now().Add(maxEntryTTL)
	if !tokenExpiry.IsZero() && tokenExpiry.Before(expiry) {
		expiry = tokenExpiry
	}

	c.mu.Lock()
	c.entries[token] = cacheEntry{info: info, expiry: expiry}
	c.mu.Unlock()
}
