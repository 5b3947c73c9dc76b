package bookmark

import "strings"

// Separator splits the name from the location in a store line.
const Separator = " - "

// Encode renders a record line without the trailing newline.
// Quotes inside path are written as-is; such a path does not survive Decode unchanged.
func Encode(name, path string) string {
	return name + Separator + `"` + path + `"`
}

/*
Decode splits a store line at the first occurrence of Separator.
Record.Stored keeps everything after the separator verbatim; Record.Path is the same
value with one pair of surrounding double quotes removed.
A line without the separator yields a *MalformedRecordError with Line left at zero;
callers that know the line number fill it in.
*/
func Decode(line string) (Record, error) {
	idx := strings.Index(line, Separator)
	if idx < 0 {
		return Record{}, &MalformedRecordError{Text: line}
	}
	stored := line[idx+len(Separator):]
	return Record{
		Name:   line[:idx],
		Path:   unquote(stored),
		Stored: stored,
	}, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
