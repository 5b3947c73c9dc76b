/*
Package bookmark defines the core domain entity for a directory bookmark
and the line format it is persisted in.
*/
package bookmark

import (
	"path/filepath"
	"regexp"
	"strings"
)

// aliasNamePattern matches names that form a shell alias word without quoting.
var aliasNamePattern = regexp.MustCompile(`^[\p{L}\p{N}._+-]+$`)

// pathUnsafeChars break the double-quoted alias value or are expanded by the shell inside it.
const pathUnsafeChars = "\r\n\"$`\\"

/*
Record is a named directory shortcut. Path is the location as the user sees it,
Stored is the value exactly as it appears after the separator in the store line
(including the surrounding quotes written by Encode).
*/
type Record struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Stored string `yaml:"-"`
}

// ValidateName reports whether name can be written as the name part of a record line.
func ValidateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "name is empty"}
	}
	if strings.Contains(name, Separator) {
		return &InvalidNameError{Name: name, Reason: "name contains the separator " + `"` + Separator + `"`}
	}
	if strings.ContainsAny(name, "\r\n") {
		return &InvalidNameError{Name: name, Reason: "name contains a line break"}
	}
	return nil
}

// AliasSafe reports whether name can follow the alias prefix in an alias definition.
// Names that fail are valid records but get no alias.
func AliasSafe(name string) bool {
	return aliasNamePattern.MatchString(name)
}

// ValidatePath reports whether path is an absolute location that Encode can quote safely.
func ValidatePath(path string) error {
	if !filepath.IsAbs(path) {
		return &InvalidPathError{Path: path, Reason: "path is not absolute"}
	}
	if strings.ContainsAny(path, pathUnsafeChars) {
		return &InvalidPathError{Path: path, Reason: "path contains a line break, quote, backslash, '$' or '`'"}
	}
	return nil
}
