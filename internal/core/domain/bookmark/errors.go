package bookmark

import (
	"errors"
	"fmt"
)

var (
	// ErrBookmarkNotFound is returned when no record carries the requested name.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrDuplicateName is returned when adding a name that is already stored.
	ErrDuplicateName = errors.New("a bookmark with this name already exists")
	// ErrInvalidName is matched by every *InvalidNameError.
	ErrInvalidName = errors.New("invalid bookmark name")
	// ErrInvalidPath is matched by every *InvalidPathError.
	ErrInvalidPath = errors.New("invalid bookmark path")
	// ErrNoSelection is returned when the picker exits cleanly without printing a choice.
	ErrNoSelection = errors.New("no bookmark chosen")
	// ErrEmptyCommand is returned when an external command is configured as an empty string.
	ErrEmptyCommand = errors.New("external command is empty")
)

// FileOpenError reports a store or alias file that could not be opened in the required mode.
type FileOpenError struct {
	Path string
	Op   string // "read", "append" or "write"
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("could not open file %s for %s: %v", e.Path, e.Op, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// MalformedRecordError reports a store line that has no separator.
type MalformedRecordError struct {
	Line int // 1-based; zero when unknown
	Text string
}

func (e *MalformedRecordError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("malformed bookmark %q: missing %q separator", e.Text, Separator)
	}
	return fmt.Sprintf("malformed bookmark on line %d %q: missing %q separator", e.Line, e.Text, Separator)
}

// TooManyArgumentsError reports a command invoked with more positional arguments than it accepts.
type TooManyArgumentsError struct {
	Command string
	Max     int
	Got     int
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("the `%s` command takes at most %d argument(s), got %d", e.Command, e.Max, e.Got)
}

// ExternalProcessError reports a non-zero exit from an external program whose status matters.
type ExternalProcessError struct {
	Command    string
	ExitStatus int
}

func (e *ExternalProcessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitStatus)
}

// InvalidNameError reports a name that cannot be stored.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid bookmark name %q: %s", e.Name, e.Reason)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// InvalidPathError reports a location that cannot be written into a store line and quoted in an alias.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid bookmark path %q: %s", e.Path, e.Reason)
}

func (e *InvalidPathError) Is(target error) bool { return target == ErrInvalidPath }
