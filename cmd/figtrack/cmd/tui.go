package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"figtrack/internal/adapters/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse boards and change reports interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.NewApp(GetConfig(), GetStore(), GetIndex())
		p := tea.NewProgram(app, tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
