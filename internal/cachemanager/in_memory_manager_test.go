package cachemanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

type ExampleStruct struct {
	ID   int
	Name string
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("doc-cache", DefaultExpiration, DefaultCleanupInterval)
	example := ExampleStruct{
		Name: "crate",
	}
	cache.Set("ex:1", example, DefaultExpiration)

	got, ok := cache.Get("ex:1")
	require.True(t, ok)
	require.Equal(t, example, got)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("doc-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set("spec", "crate", DefaultExpiration)

	got, ok := cache.Get("spec")
	require.True(t, ok)
	require.Equal(t, "crate", got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("doc-cache", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get("spec")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("doc-cache", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("spec", 123, DefaultExpiration)

	got, ok := cache.Get("spec")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("doc-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set("a", "1", DefaultExpiration)
	cache.Set("b", "2", DefaultExpiration)

	cache.Delete("a", "b")

	_, ok := cache.Get("a")
	require.False(t, ok)
	_, ok = cache.Get("b")
	require.False(t, ok)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("doc-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set("a", "1", DefaultExpiration)

	cache.Flush()

	_, ok := cache.Get("a")
	require.False(t, ok)
}
