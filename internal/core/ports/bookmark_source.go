package ports

import "github.com/bmark-cli/bmark/internal/core/domain/bookmark"

// BookmarkSource defines the interface for reading bookmarks from an external document,
// like a YAML export.
type BookmarkSource interface {
	GetBookmarks() ([]bookmark.Record, error)
}
