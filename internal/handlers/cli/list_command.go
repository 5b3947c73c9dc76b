package cli

import (
	"fmt"

	"github.com/bmark-cli/bmark/internal/adapters/yamlbookmarks"
	"github.com/bmark-cli/bmark/internal/core/domain/bookmark"
	"github.com/bmark-cli/bmark/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	formatRaw   = "raw"
	formatTable = "table"
	formatYAML  = "yaml"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all stored bookmarks.",
		Long: `Prints the bookmark store in the order bookmarks were added.
--format table renders an aligned table, --format yaml prints a document 'bmark import' accepts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return runListCmd(cmd, a, format)
		},
	}
	cmd.Flags().StringP("format", "f", formatRaw, "output format: raw, table or yaml")
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, a *app, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case formatRaw:
		for line, err := range a.svc.List() {
			if err != nil {
				return err
			}
			fmt.Fprintln(out, line)
		}
		return nil

	case formatTable:
		records, err := a.svc.Records()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, ui.InfoColor("No bookmarks stored yet. Add one with 'bmark add'."))
			return nil
		}
		table := tablewriter.NewWriter(out)
		table.SetAutoFormatHeaders(false)
		table.SetHeader([]string{ui.HeaderColor("NAME"), ui.HeaderColor("ALIAS"), ui.HeaderColor("PATH")})
		table.SetBorder(true)
		table.SetAutoWrapText(false)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
		for _, rec := range records {
			aliasName := a.cfg.AliasPrefix + rec.Name
			if !bookmark.AliasSafe(rec.Name) {
				aliasName = "-"
			}
			table.Append([]string{rec.Name, aliasName, rec.Path})
		}
		table.Render()
		return nil

	case formatYAML:
		records, err := a.svc.Records()
		if err != nil {
			return err
		}
		doc, err := yamlbookmarks.Marshal(records)
		if err != nil {
			return err
		}
		_, err = out.Write(doc)
		return err

	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatRaw, formatTable, formatYAML)
	}
}
