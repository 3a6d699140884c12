// Package config holds the process-wide board configuration. It is built
// once at startup and passed into the store and CLI layers; domain code
// never reads it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"figtrack/internal/application"
	"figtrack/internal/ports"
)

const (
	DefaultDataDir    = "~/.local/share/figtrack/snapshots"
	defaultConfigPath = "~/.config/figtrack/boards.yaml"
)

// Board describes one tracked Figma/FigJam source.
type Board struct {
	Name        string `yaml:"name"`
	FileKey     string `yaml:"file_key"`
	NodeID      string `yaml:"node_id"`
	URL         string `yaml:"url,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Config is the full figtrack configuration.
type Config struct {
	DataDir      string           `yaml:"data_dir"`
	DefaultBoard string           `yaml:"default_board"`
	Boards       map[string]Board `yaml:"boards"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DataDir:      DefaultDataDir,
		DefaultBoard: "decision-tree",
		Boards: map[string]Board{
			"decision-tree": {
				Name:        "Decision Tree",
				FileKey:     "UKiEtHKGhIDRnBGTVhsoL5",
				NodeID:      "2419:3646",
				URL:         "https://www.figma.com/board/UKiEtHKGhIDRnBGTVhsoL5/Decision-Tree?node-id=2419-3646",
				Description: "Description of the board",
			},
		},
	}
}

// Path returns the config file path from the FIGTRACK_CONFIG env var,
// falling back to the default location.
func Path() string {
	if env := os.Getenv("FIGTRACK_CONFIG"); env != "" {
		return env
	}
	return defaultConfigPath
}

// Load reads the configuration from path (Path() when empty). A missing file
// yields the built-in default rather than an error. FIGTRACK_DATA overrides
// the data directory either way.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := Default()
	data, err := os.ReadFile(expandHome(path))
	switch {
	case os.IsNotExist(err):
		// Keep defaults.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if env := os.Getenv("FIGTRACK_DATA"); env != "" {
		cfg.DataDir = env
	}
	if cfg.DefaultBoard == "" && len(cfg.Boards) > 0 {
		cfg.DefaultBoard = cfg.BoardNames()[0]
	}

	return cfg, nil
}

// Board resolves a board by name, using the default board for the empty
// name. Unknown names fail before any store access happens.
func (c *Config) Board(name string) (Board, error) {
	if name == "" {
		name = c.DefaultBoard
	}
	board, ok := c.Boards[name]
	if !ok {
		return Board{}, fmt.Errorf("%w: %q", application.ErrBoardNotFound, name)
	}
	return board, nil
}

// Ref resolves a board into the reference used by capture sources and
// commands. The map key is the board's storage name; Board.Name is the
// human-facing display name.
func (c *Config) Ref(name string) (ports.BoardRef, error) {
	if name == "" {
		name = c.DefaultBoard
	}
	board, err := c.Board(name)
	if err != nil {
		return ports.BoardRef{}, err
	}
	return ports.BoardRef{
		Name:        name,
		DisplayName: board.Name,
		FileKey:     board.FileKey,
		NodeID:      board.NodeID,
		URL:         board.URL,
	}, nil
}

// BoardNames returns the configured board names in sorted order.
func (c *Config) BoardNames() []string {
	names := make([]string, 0, len(c.Boards))
	for name := range c.Boards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
