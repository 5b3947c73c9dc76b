package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewOpenCommand creates the 'open' subcommand.
func NewOpenCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open a new terminal in a bookmarked location.",
		Long: `Feeds the bookmark store to the configured picker (fzf by default) and
starts the configured terminal in the chosen directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.svc.Open(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor("Opening terminal in"), ui.BookmarkPathColor(path))
			return nil
		},
	}
}
