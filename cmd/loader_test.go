package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindSpecFiles_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	for _, name := range []string{"b.yaml", "a.yml", "notes.txt", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.json"), []byte("{}"), 0o644))

	paths, err := findSpecFiles([]string{dir})
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "a.yml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(sub, "c.json"),
	}, paths)
}

func TestFindSpecFiles_MissingDir(t *testing.T) {
	_, err := findSpecFiles([]string{filepath.Join(t.TempDir(), "absent")})

	require.Error(t, err)
	require.Contains(t, err.Error(), "scanning")
}

func TestFindSpecFiles_MultipleDirs(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dirA, "a.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dirB, "b.yaml"), []byte("x"), 0o644))

	paths, err := findSpecFiles([]string{dirA, dirB})
	require.NoError(t, err)
	require.Len(t, paths, 2)
}
