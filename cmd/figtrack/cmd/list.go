package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"figtrack/internal/application/commands"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a board's snapshots, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		board, err := ResolveBoard()
		if err != nil {
			return err
		}

		metas, err := commands.NewListSnapshotsCommand(GetStore(), GetIndex(), board.Name).Execute(ctx)
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(metas)
		}

		if len(metas) == 0 {
			fmt.Printf("No snapshots for board %q yet.\n", board.Name)
			return nil
		}
		for _, m := range metas {
			fmt.Printf("%s  %4d nodes", m.Timestamp, m.NodeCount)
			if m.SectionName != "" {
				fmt.Printf("  [%s]", m.SectionName)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
