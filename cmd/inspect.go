package cmd

import (
	"fmt"
	"os"
	"strings"

	"tptgen/internal/query"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [SELECT statement]",
	Short: "Show which tables and columns a SELECT statement touches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		refs, err := query.Inspect(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse statement: %w", err)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Alias", "Table", "Columns"})
		table.SetBorder(false)
		table.SetColumnSeparator(" ")

		for _, ref := range refs {
			table.Append([]string{ref.Alias, ref.Table, strings.Join(ref.Columns, ", ")})
		}
		table.Render()

		return nil
	},
}

func init() {
	RootCmd.AddCommand(inspectCmd)
}
