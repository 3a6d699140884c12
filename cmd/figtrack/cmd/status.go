package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"figtrack/internal/application/commands"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show when a board was last captured",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		board, err := ResolveBoard()
		if err != nil {
			return err
		}

		status, err := commands.NewStatusCommand(GetStore(), GetIndex(), board.Name, board.DisplayName).Execute(ctx)
		if err != nil {
			return err
		}

		if statusJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(status)
		}

		fmt.Printf("Board: %s (%s)\n", status.Board, status.DisplayName)
		fmt.Printf("Snapshots: %d\n", status.TotalSnapshots)
		if status.LastTimestamp != "" {
			fmt.Printf("Last capture: %s (%s, %d nodes)\n", status.LastTimestamp, status.LastAgo, status.LastNodeCount)
		} else {
			fmt.Println("Last capture: never")
		}
		fmt.Printf("Directory: %s\n", status.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
}
