package document

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingSource counts how many reads reach the underlying source.
type countingSource struct {
	docs  map[string]map[string]any
	reads int
}

func (s *countingSource) Read(path string) (map[string]any, error) {
	s.reads++
	doc, ok := s.docs[path]
	if !ok {
		return nil, fmt.Errorf("no document at %s", path)
	}
	return doc, nil
}

func newCountingSource() *countingSource {
	return &countingSource{docs: map[string]map[string]any{
		"a.yaml": {"type": "solid"},
		"b.yaml": {"type": "primitive"},
	}}
}

func TestCachingReader_SecondReadHitsCache(t *testing.T) {
	source := newCountingSource()
	reader := NewCachingReader(source, time.Minute, false)

	doc, err := reader.Read("a.yaml")
	require.NoError(t, err)
	require.Equal(t, "solid", doc["type"])

	_, err = reader.Read("a.yaml")
	require.NoError(t, err)
	require.Equal(t, 1, source.reads)
}

func TestCachingReader_DistinctPathsEachHitSource(t *testing.T) {
	source := newCountingSource()
	reader := NewCachingReader(source, time.Minute, false)

	_, err := reader.Read("a.yaml")
	require.NoError(t, err)
	_, err = reader.Read("b.yaml")
	require.NoError(t, err)

	require.Equal(t, 2, source.reads)
}

func TestCachingReader_InvalidateForcesReread(t *testing.T) {
	source := newCountingSource()
	reader := NewCachingReader(source, time.Minute, false)

	_, err := reader.Read("a.yaml")
	require.NoError(t, err)

	source.docs["a.yaml"] = map[string]any{"type": "primitive"}
	reader.Invalidate("a.yaml")

	doc, err := reader.Read("a.yaml")
	require.NoError(t, err)
	require.Equal(t, "primitive", doc["type"])
	require.Equal(t, 2, source.reads)
}

func TestCachingReader_SkipCacheAlwaysHitsSource(t *testing.T) {
	source := newCountingSource()
	reader := NewCachingReader(source, time.Minute, true)

	_, err := reader.Read("a.yaml")
	require.NoError(t, err)
	_, err = reader.Read("a.yaml")
	require.NoError(t, err)

	require.Equal(t, 2, source.reads)
}

func TestCachingReader_SourceErrorsAreNotCached(t *testing.T) {
	source := newCountingSource()
	reader := NewCachingReader(source, time.Minute, false)

	_, err := reader.Read("missing.yaml")
	require.Error(t, err)

	// A later read retries the source instead of serving the failure.
	source.docs["missing.yaml"] = map[string]any{"type": "solid"}
	doc, err := reader.Read("missing.yaml")
	require.NoError(t, err)
	require.Equal(t, "solid", doc["type"])
	require.Equal(t, 2, source.reads)
}
