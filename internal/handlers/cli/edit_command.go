package cli

import (
	"github.com/spf13/cobra"
)

// NewEditCommand creates the 'edit' subcommand.
func NewEditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit bookmarks in a text editor.",
		Long: `Opens the bookmark store in the configured editor and regenerates the
alias file once the editor exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.svc.Edit(cmd.Context())
		},
	}
}
