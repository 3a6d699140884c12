package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"figtrack/internal/application/commands"
	"figtrack/internal/report"
)

var (
	compareFrom string
	compareTo   string
	compareJSON bool
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Diff two snapshots and print the change report",
	Long: `Diff two snapshots of a board and print the change report: nodes
added, removed, and nodes whose text changed.

Without flags the two most recent snapshots are compared. With only
--from, that snapshot is compared against the latest.

Examples:
  figtrack compare
  figtrack compare --from 2025-01-10_090000
  figtrack compare --from 2025-01-10_090000 --to 2025-01-15_120000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		board, err := ResolveBoard()
		if err != nil {
			return err
		}

		compareCmd := commands.NewCompareCommand(GetStore(), GetIndex(), board.Name, compareFrom, compareTo)
		result, err := compareCmd.Execute(ctx)
		if err != nil {
			return err
		}

		if compareJSON {
			data, err := report.JSON(result)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(report.Text(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&compareFrom, "from", "", "older snapshot timestamp (default second-latest)")
	compareCmd.Flags().StringVar(&compareTo, "to", "", "newer snapshot timestamp (default latest)")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "output as JSON")
}
