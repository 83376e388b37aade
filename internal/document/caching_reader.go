package document

import (
	"time"

	"github.com/zjrosen/curator/internal/cachemanager"
)

// Source is the underlying reader a CachingReader wraps.
type Source interface {
	Read(path string) (map[string]any, error)
}

// CachingReader wraps a Source with a read-through cache keyed by path.
// Parsed documents are treated as read-only by consumers, so cached maps
// are shared, not copied.
type CachingReader struct {
	rt  *cachemanager.ReadThroughCache[string, map[string]any]
	ttl time.Duration
}

// NewCachingReader builds a CachingReader over source. A zero ttl falls
// back to the cache manager default. skipCache disables caching entirely,
// which is what the watcher-driven reload path wants.
func NewCachingReader(source Source, ttl time.Duration, skipCache bool) *CachingReader {
	if ttl <= 0 {
		ttl = cachemanager.DefaultExpiration
	}
	mgr := cachemanager.NewInMemoryCacheManager[string, map[string]any](
		"spec-documents", ttl, cachemanager.DefaultCleanupInterval)
	return &CachingReader{
		rt:  cachemanager.NewReadThroughCache[string, map[string]any](mgr, source.Read, skipCache),
		ttl: ttl,
	}
}

// Read returns the parsed document at path, from cache when fresh.
func (c *CachingReader) Read(path string) (map[string]any, error) {
	return c.rt.Get(path, c.ttl)
}

// Invalidate drops the cached documents for the given paths, forcing the
// next Read to hit disk. Called by the watcher when a spec file changes.
func (c *CachingReader) Invalidate(paths ...string) {
	c.rt.Invalidate(paths...)
}
