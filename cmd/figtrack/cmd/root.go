package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"figtrack/internal/adapters/filesystem"
	"figtrack/internal/adapters/sqlite"
	"figtrack/internal/config"
	"figtrack/internal/ports"
)

var (
	configPath string
	dataDir    string
	boardName  string

	cfg   *config.Config
	store ports.SnapshotStore
	index *sqlite.Index
)

var rootCmd = &cobra.Command{
	Use:   "figtrack",
	Short: "Track changes to Figma and FigJam boards over time",
	Long: `figtrack stores timestamped snapshots of Figma/FigJam boards and
reports what changed between any two of them: nodes added, removed,
or with edited text.

Snapshots arrive through the capture workflow: an AI assistant with
Figma MCP access fetches the board and hands the payload to figtrack,
either via the figtrack-mcp save_snapshot tool or 'figtrack capture'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if dataDir != "" {
			cfg.DataDir = dataDir
		}

		store = filesystem.NewStore(cfg.DataDir)

		// The index is a cache; run without it rather than fail.
		index = sqlite.NewIndex()
		if err := index.Open(cfg.DataDir); err != nil {
			slog.Warn("snapshot index unavailable", "err", err)
			index = nil
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if index != nil {
			index.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default "+config.Path()+")")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "snapshot data directory (default "+config.DefaultDataDir+")")
	rootCmd.PersistentFlags().StringVarP(&boardName, "board", "b", "", "board to operate on (default from config)")
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}

// GetStore returns the initialized snapshot store
func GetStore() ports.SnapshotStore {
	return store
}

// GetIndex returns the snapshot index, or nil when unavailable.
func GetIndex() ports.SnapshotIndex {
	if index == nil {
		return nil
	}
	return index
}

// ResolveBoard resolves the --board flag against the configuration.
func ResolveBoard() (ports.BoardRef, error) {
	return cfg.Ref(boardName)
}
