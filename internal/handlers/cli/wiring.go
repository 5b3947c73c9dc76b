package cli

import (
	"github.com/bmark-cli/bmark/internal/adapters/aliasgeneration"
	"github.com/bmark-cli/bmark/internal/config"
	"github.com/bmark-cli/bmark/internal/core/ports"
	"github.com/bmark-cli/bmark/internal/core/services/bookmarks"
	"github.com/bmark-cli/bmark/internal/repositories/aliasfile"
	"github.com/bmark-cli/bmark/internal/repositories/bookmarkstore"
)

// NewServiceFactory returns a ServiceFactory that wires the file-backed
// repositories to runner. getwd resolves the directory of new bookmarks.
func NewServiceFactory(runner ports.ProcessRunner, getwd bookmarks.WorkingDirFunc) ServiceFactory {
	return func(cfg *config.Config) (ports.BookmarkService, error) {
		store, err := bookmarkstore.NewStore(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		aliases, err := aliasfile.NewWriter(cfg.AliasPath)
		if err != nil {
			return nil, err
		}
		gen := aliasgeneration.NewAliasGenerator(cfg.AliasPrefix)
		cmds := bookmarks.Commands{
			Editor:   cfg.EditorCommand,
			Picker:   cfg.PickerCommand,
			Terminal: cfg.TerminalCommand,
		}
		return bookmarks.NewService(store, aliases, gen, runner, cmds, getwd), nil
	}
}
