package bookmarkstore

import (
	"bufio"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/core/ports"
	"github.com/bmark-cli/bmark/internal/logging"
)

// Store provides access to the bookmark file on the file system.
type Store struct {
	path string
}

// NewStore creates a new Store backed by the file at path.
func NewStore(path string) (ports.BookmarkStore, error) {
	if path == "" {
		return nil, fmt.Errorf("bookmark store path cannot be empty")
	}
	return &Store{path: path}, nil
}

// Path implements the ports.BookmarkStore interface.
func (s *Store) Path() string {
	return s.path
}

// Append implements the ports.BookmarkStore interface.
func (s *Store) Append(line string) error {
	dirPath := filepath.Dir(s.path)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &bookmark.FileOpenError{Path: s.path, Op: "append", Err: err}
	}
	defer file.Close()

	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write bookmark to %s: %w", s.path, err)
	}
	log := logging.GetLogger("bookmarkstore")
	log.Debug().Str("path", s.path).Str("line", line).Msg("Appended bookmark")
	return nil
}

// Lines implements the ports.BookmarkStore interface.
func (s *Store) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		file, err := os.Open(s.path)
		if err != nil {
			yield("", &bookmark.FileOpenError{Path: s.path, Op: "read", Err: err})
			return
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", fmt.Errorf("error scanning bookmark file %s: %w", s.path, err))
		}
	}
}

// ReadLines implements the ports.BookmarkStore interface.
func (s *Store) ReadLines() ([]string, error) {
	var lines []string
	for line, err := range s.Lines() {
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Rewrite implements the ports.BookmarkStore interface.
func (s *Store) Rewrite(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	file, err := os.OpenFile(s.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &bookmark.FileOpenError{Path: s.path, Op: "write", Err: err}
	}
	defer file.Close()

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to rewrite bookmark file %s: %w", s.path, err)
	}
	return nil
}
