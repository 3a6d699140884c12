package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"figtrack/internal/application/commands"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the configured boards",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := GetConfig()

		for _, name := range cfg.BoardNames() {
			ref, err := cfg.Ref(name)
			if err != nil {
				return err
			}
			status, err := commands.NewStatusCommand(GetStore(), GetIndex(), name, ref.DisplayName).Execute(ctx)
			if err != nil {
				return err
			}

			marker := " "
			if name == cfg.DefaultBoard {
				marker = "*"
			}
			fmt.Printf("%s %-20s %-30q %d snapshots", marker, name, ref.DisplayName, status.TotalSnapshots)
			if status.LastAgo != "" {
				fmt.Printf(" (last %s)", status.LastAgo)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(boardsCmd)
}
