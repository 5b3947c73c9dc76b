package ports

import "iter"

/*
BookmarkStore defines the contract for the flat file holding one record line per bookmark.
This is a driven port, implemented by a repository adapter.
*/
type BookmarkStore interface {
	// Append writes one line, creating the file and its parent directories when missing.
	Append(line string) error

	/*
	   Lines yields every raw line of the store in file order. Each range over the
	   returned sequence re-reads the file, so the sequence can be consumed more than once.
	   A failure to open or scan the file is yielded as the error of the final pair.
	*/
	Lines() iter.Seq2[string, error]

	// ReadLines collects Lines into a slice.
	ReadLines() ([]string, error)

	// Rewrite replaces the whole store with lines.
	Rewrite(lines []string) error

	// Path returns the location of the store file.
	Path() string
}
