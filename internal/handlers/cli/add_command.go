package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [<name>]",
		Short: "Add a bookmark to the current working directory.",
		Long: `Appends the current working directory to the bookmark store and regenerates
the alias file. Without a name the directory's own name is used.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &bookmark.TooManyArgumentsError{Command: "add", Max: 1, Got: len(args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, a)
		},
	}
	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, a *app) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	rec, err := a.svc.Add(name)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		ui.SuccessColor("Added"), ui.BookmarkNameColor(rec.Name), ui.DetailColor(rec.Path))
	return nil
}
