package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/adapters/yamlbookmarks"
	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add bookmarks from a YAML file.",
		Long: `Reads a YAML list of {name, path} entries, as printed by 'bmark list --format yaml',
appends the ones whose names are not stored yet and regenerates the alias file once.`,
		Args: usageArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args[0], a)
		},
	}
}

func runImportCmd(cmd *cobra.Command, path string, a *app) error {
	provider, err := yamlbookmarks.NewYAMLProvider(path)
	if err != nil {
		return err
	}
	records, err := provider.GetBookmarks()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor(fmt.Sprintf("No bookmarks found in %s.", path)))
		return nil
	}

	result, err := a.svc.Import(records)
	if err != nil {
		return fmt.Errorf("import stopped (added: %d, skipped: %d): %w", len(result.Added), len(result.Skipped), err)
	}

	out := cmd.OutOrStdout()
	for _, rec := range result.Added {
		fmt.Fprintf(out, "%s %s %s\n", ui.SuccessColor("Added"), ui.BookmarkNameColor(rec.Name), ui.DetailColor(rec.Path))
	}
	for _, rec := range result.Skipped {
		fmt.Fprintf(out, "%s %s %s\n", ui.WarningColor("Skipped"), ui.BookmarkNameColor(rec.Name), ui.DetailColor("(name already stored)"))
	}
	return nil
}
