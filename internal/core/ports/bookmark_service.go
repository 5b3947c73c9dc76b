package ports

import (
	"context"
	"iter"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
)

// ImportResult holds the outcome of a bulk import.
type ImportResult struct {
	Added   []bookmark.Record
	Skipped []bookmark.Record
}

// BookmarkService defines the contract for managing bookmarks and their shell aliases.
type BookmarkService interface {
	// Add stores the current working directory under name, or under the directory's
	// own name when name is empty, and regenerates the alias file.
	Add(name string) (bookmark.Record, error)

	// List yields the raw store lines in insertion order.
	List() iter.Seq2[string, error]

	// Records decodes every non-blank store line.
	Records() ([]bookmark.Record, error)

	// Remove deletes every record named exactly name and regenerates the alias file.
	// It returns the number of records removed.
	Remove(name string) (int, error)

	// Edit opens the store in the editor and regenerates the alias file once the editor exits.
	Edit(ctx context.Context) error

	// EditFile opens an arbitrary file in the editor and waits for it.
	EditFile(ctx context.Context, path string) error

	// Update regenerates the alias file and returns the number of aliases written.
	Update() (int, error)

	// Open lets the user pick a bookmark and launches a terminal there.
	// It returns the chosen directory.
	Open(ctx context.Context) (string, error)

	// Import appends records that are not stored yet and regenerates the alias file once.
	Import(records []bookmark.Record) (ImportResult, error)
}
