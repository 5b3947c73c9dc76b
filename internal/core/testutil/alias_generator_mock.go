package testutil

import (
	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/core/ports"
)

// MockAliasGenerator is a mock implementation of ports.AliasGenerator.
type MockAliasGenerator struct {
	GenerateFunc func(lines []string) ([]byte, int, error)
	Calls        [][]string
}

// Generate records the lines and delegates to GenerateFunc.
func (m *MockAliasGenerator) Generate(lines []string) ([]byte, int, error) {
	m.Calls = append(m.Calls, append([]string(nil), lines...))
	if m.GenerateFunc != nil {
		return m.GenerateFunc(lines)
	}
	return []byte{}, 0, nil // Empty alias file if not implemented
}

// MockBookmarkSource is a mock implementation of ports.BookmarkSource.
type MockBookmarkSource struct {
	GetBookmarksFunc func() ([]bookmark.Record, error)
}

func (m *MockBookmarkSource) GetBookmarks() ([]bookmark.Record, error) {
	if m.GetBookmarksFunc != nil {
		return m.GetBookmarksFunc()
	}
	return nil, nil
}

var (
	_ ports.AliasGenerator = (*MockAliasGenerator)(nil)
	_ ports.BookmarkSource = (*MockBookmarkSource)(nil)
)
