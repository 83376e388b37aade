// Package document implements the document reader collaborator: it loads
// structured spec documents from disk and parses them into generic maps the
// construction bridge consumes. YAML is a superset of JSON, so both .yaml
// and .json spec files parse through the same path.
package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/curator/internal/log"
)

// FileReader reads and parses documents straight from disk.
type FileReader struct{}

// NewFileReader creates a FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

// Read loads the document at path and parses it into a generic map.
func (r *FileReader) Read(path string) (map[string]any, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is a user-supplied spec document
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("parse %s: empty document", path)
	}

	log.Debug(log.CatDoc, "document parsed", "path", path, "fields", len(doc))
	return doc, nil
}
