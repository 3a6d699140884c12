package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"figtrack/internal/application/commands"
)

var (
	summaryTimestamp string
	summaryJSON      bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize a snapshot's node composition",
	Long: `Summarize one snapshot of a board: total node count and the
breakdown per node type. Defaults to the latest snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		board, err := ResolveBoard()
		if err != nil {
			return err
		}

		summary, err := commands.NewSummaryCommand(GetStore(), board.Name, summaryTimestamp).Execute(ctx)
		if err != nil {
			return err
		}

		if summaryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}

		fmt.Printf("Board: %s\n", summary.BoardName)
		fmt.Printf("Snapshot: %s\n", summary.Timestamp)
		if summary.SectionName != "" {
			fmt.Printf("Section: %s\n", summary.SectionName)
		}
		fmt.Printf("Total nodes: %d\n", summary.TotalNodes)

		types := make([]string, 0, len(summary.NodeTypes))
		for t := range summary.NodeTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("  %-16s %d\n", t, summary.NodeTypes[t])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringVar(&summaryTimestamp, "timestamp", "", "snapshot timestamp (default latest)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output as JSON")
}
