package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/config"
	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the 'config' command group.
func NewConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Commands for managing bmark configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return ErrUsage
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := a.cfg.Encode()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:         "create",
			Short:       "Write a config file with the default settings.",
			Args:        cobra.NoArgs,
			Annotations: map[string]string{lenientConfigAnnotation: ""},
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.Create(a.cfgPath, config.Default(a.env)); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor("Created"), ui.DetailColor(ui.FriendlyPath(a.cfgPath)))
				return nil
			},
		},
		&cobra.Command{
			Use:   "edit",
			Short: "Edit the config file in a text editor.",
			Long: `Opens the config file in the configured editor. When the file cannot be
loaded the editor comes from $VISUAL, $EDITOR or nvim, so a broken file can still be fixed.`,
			Args:        cobra.NoArgs,
			Annotations: map[string]string{lenientConfigAnnotation: ""},
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.svc.EditFile(cmd.Context(), a.cfgPath)
			},
		},
		&cobra.Command{
			Use:   "source-cmd",
			Short: "Print the shell line that loads the generated aliases.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), a.cfg.SourceCommand())
				return nil
			},
		},
	)
	return cmd
}
