package yamlbookmarks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the BookmarkSource interface
// by reading bookmarks from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing a list of {name, path} entries.
func NewYAMLProvider(filePath string) (ports.BookmarkSource, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetBookmarks reads and parses bookmarks from the configured YAML file.
// An empty document yields an empty list. Unknown keys and entries without a path are errors.
func (p *YAMLProvider) GetBookmarks() ([]bookmark.Record, error) {
	records := []bookmark.Record{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, &bookmark.FileOpenError{Path: p.filePath, Op: "read", Err: err}
	}
	if len(yamlFile) == 0 {
		return records, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&records); err != nil {
		// A document holding only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		return nil, fmt.Errorf("failed to unmarshal bookmarks from %s: %w", p.filePath, err)
	}

	for i := range records {
		if records[i].Path == "" {
			return nil, fmt.Errorf("bookmark %d (%q) in %s has no path", i+1, records[i].Name, p.filePath)
		}
	}
	return records, nil
}

// Marshal renders records as the YAML list GetBookmarks reads.
func Marshal(records []bookmark.Record) ([]byte, error) {
	if records == nil {
		records = []bookmark.Record{}
	}
	out, err := yaml.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	return out, nil
}
