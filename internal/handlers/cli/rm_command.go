package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRmCommand creates the 'rm' subcommand.
func NewRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a bookmark with a given name.",
		Long: `Removes every bookmark whose name matches exactly (case-sensitive) and
regenerates the alias file.`,
		Args: usageArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.svc.Remove(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d bookmark(s) named %s\n",
				ui.SuccessColor("Removed"), removed, ui.BookmarkNameColor(args[0]))
			return nil
		},
	}
}
