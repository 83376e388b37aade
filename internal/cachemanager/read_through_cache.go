package cachemanager

import "time"

type ReadThroughCache[K ~string, V any] struct {
	cache           CacheManager[K, V]
	fn              func(key K) (V, error)
	shouldSkipCache bool
}

func NewReadThroughCache[K ~string, V any](
	cache CacheManager[K, V],
	fn func(key K) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V] {
	return &ReadThroughCache[K, V]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

func (r *ReadThroughCache[K, V]) Get(key K, ttl time.Duration) (V, error) {
	if r.shouldSkipCache {
		return r.fn(key)
	}

	if value, ok := r.cache.Get(key); ok {
		return value, nil
	}

	value, err := r.fn(key)
	if err != nil {
		return value, err
	}

	r.cache.Set(key, value, ttl)

	return value, nil
}

// Invalidate drops cached entries so the next Get re-reads through fn.
func (r *ReadThroughCache[K, V]) Invalidate(keys ...K) {
	r.cache.Delete(keys...)
}
