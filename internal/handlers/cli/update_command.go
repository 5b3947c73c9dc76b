package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewUpdateCommand creates the 'update' subcommand.
func NewUpdateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update the shell aliases file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := a.svc.Update()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d alias(es) to %s\n",
				ui.SuccessColor("Wrote"), count, ui.DetailColor(ui.FriendlyPath(a.cfg.AliasPath)))
			return nil
		},
	}
}
