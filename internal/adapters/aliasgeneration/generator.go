package aliasgeneration

import (
	"bytes"
	"errors"
	"strings"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/core/ports"
	"github.com/bmark-cli/bmark/internal/logging"
)

// DefaultPrefix is prepended to every bookmark name to form the alias name.
const DefaultPrefix = "_"

// AliasGenerator turns bookmark records into shell alias definitions.
type AliasGenerator struct {
	prefix string
}

// NewAliasGenerator creates a new AliasGenerator. An empty prefix selects DefaultPrefix.
func NewAliasGenerator(prefix string) ports.AliasGenerator {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &AliasGenerator{prefix: prefix}
}

/*
Generate emits one `alias <prefix><name>=<stored value>` line per record, in store order.
The stored value is copied verbatim, quotes included. Whitespace-only lines are skipped,
and so are records whose name is not bookmark.AliasSafe (whitespace, shell metacharacters);
those are logged as warnings and not counted.
The first line without a separator aborts generation with a *bookmark.MalformedRecordError
carrying its 1-based line number; nothing is returned for the other lines.
*/
func (g *AliasGenerator) Generate(lines []string) ([]byte, int, error) {
	var buf bytes.Buffer
	count := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := bookmark.Decode(line)
		if err != nil {
			var malformed *bookmark.MalformedRecordError
			if errors.As(err, &malformed) {
				malformed.Line = i + 1
			}
			return nil, 0, err
		}
		if !bookmark.AliasSafe(rec.Name) {
			log := logging.GetLogger("aliasgeneration")
			log.Warn().Int("line", i+1).Str("name", rec.Name).Msg("Skipping bookmark whose name cannot be a shell alias")
			continue
		}
		buf.WriteString(g.aliasLine(rec))
		count++
	}
	return buf.Bytes(), count, nil
}

func (g *AliasGenerator) aliasLine(rec bookmark.Record) string {
	return "alias " + g.prefix + rec.Name + "=" + rec.Stored + "\n"
}
