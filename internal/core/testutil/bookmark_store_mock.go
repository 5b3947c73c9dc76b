package testutil

import (
	"iter"

	"github.com/bmark-cli/bmark/internal/core/ports"
)

// MockBookmarkStore is an in-memory implementation of ports.BookmarkStore.
// When ReadErr is set every read fails with it; AppendErr and RewriteErr do the same for writes.
type MockBookmarkStore struct {
	StoredLines []string
	StorePath   string
	ReadErr     error
	AppendErr   error
	RewriteErr  error
}

// Append adds line to StoredLines.
func (m *MockBookmarkStore) Append(line string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.StoredLines = append(m.StoredLines, line)
	return nil
}

// Lines yields StoredLines, or ReadErr.
func (m *MockBookmarkStore) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if m.ReadErr != nil {
			yield("", m.ReadErr)
			return
		}
		for _, line := range m.StoredLines {
			if !yield(line, nil) {
				return
			}
		}
	}
}

// ReadLines returns a copy of StoredLines, or ReadErr.
func (m *MockBookmarkStore) ReadLines() ([]string, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return append([]string(nil), m.StoredLines...), nil
}

// Rewrite replaces StoredLines.
func (m *MockBookmarkStore) Rewrite(lines []string) error {
	if m.RewriteErr != nil {
		return m.RewriteErr
	}
	m.StoredLines = append([]string(nil), lines...)
	return nil
}

// Path returns StorePath.
func (m *MockBookmarkStore) Path() string {
	return m.StorePath
}

// MockAliasFileWriter captures what would be written to the alias file.
type MockAliasFileWriter struct {
	Content  []byte
	Writes   int
	FilePath string
	WriteErr error
}

// WriteAliases stores content, or fails with WriteErr.
func (m *MockAliasFileWriter) WriteAliases(content []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Content = append([]byte(nil), content...)
	m.Writes++
	return nil
}

// Path returns FilePath.
func (m *MockAliasFileWriter) Path() string {
	return m.FilePath
}

var (
	_ ports.BookmarkStore   = (*MockBookmarkStore)(nil)
	_ ports.AliasFileWriter = (*MockAliasFileWriter)(nil)
)
