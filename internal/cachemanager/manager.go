// Package cachemanager provides a small generic caching layer used by the
// document reader. Cache operations are synchronous in-memory map lookups
// and carry no cancellation contract.
package cachemanager

import "time"

type CacheManager[K ~string, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V, ttl time.Duration)
	Delete(keys ...K)
	Flush()
}
