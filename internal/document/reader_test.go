package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileReader_Read_ParsesYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spec.yaml", `
type: solid
mass: 2.5
tags: [a, b]
`)

	doc, err := NewFileReader().Read(path)
	require.NoError(t, err)
	require.Equal(t, "solid", doc["type"])
	require.Equal(t, 2.5, doc["mass"])
	require.Len(t, doc["tags"], 2)
}

func TestFileReader_Read_ParsesJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "spec.json", `{"type": "primitive", "segments": 8}`)

	doc, err := NewFileReader().Read(path)
	require.NoError(t, err)
	require.Equal(t, "primitive", doc["type"])
	require.Equal(t, 8, doc["segments"])
}

func TestFileReader_Read_MissingFile(t *testing.T) {
	_, err := NewFileReader().Read(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileReader_Read_Malformed(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "{ not: [valid")

	_, err := NewFileReader().Read(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse")
}

func TestFileReader_Read_EmptyDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")

	_, err := NewFileReader().Read(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty document")
}

func TestFileReader_Read_NonMappingDocument(t *testing.T) {
	path := writeFile(t, t.TempDir(), "list.yaml", "- a\n- b\n")

	_, err := NewFileReader().Read(path)
	require.Error(t, err)
}
