package aliasfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/core/ports"
)

// Writer replaces the generated alias file on the file system.
type Writer struct {
	path string
}

// NewWriter creates a new Writer for the alias file at path.
func NewWriter(path string) (ports.AliasFileWriter, error) {
	if path == "" {
		return nil, fmt.Errorf("alias file path cannot be empty")
	}
	return &Writer{path: path}, nil
}

// Path implements the ports.AliasFileWriter interface.
func (w *Writer) Path() string {
	return w.path
}

// WriteAliases implements the ports.AliasFileWriter interface.
// Prior content is discarded.
func (w *Writer) WriteAliases(content []byte) error {
	dirPath := filepath.Dir(w.path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	file, err := os.OpenFile(w.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &bookmark.FileOpenError{Path: w.path, Op: "write", Err: err}
	}
	defer file.Close()

	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("failed to write alias file %s: %w", w.path, err)
	}
	return nil
}
