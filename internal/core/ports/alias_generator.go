package ports

/*
AliasGenerator defines the contract for turning store lines into the content of the alias file.
This is a driven port, representing a domain capability.
*/
type AliasGenerator interface {
	// Generate returns the complete alias file content and the number of aliases in it.
	Generate(lines []string) (content []byte, count int, err error)
}
