package ports

// AliasFileWriter replaces the alias file with freshly generated content.
type AliasFileWriter interface {
	WriteAliases(content []byte) error
	Path() string
}
