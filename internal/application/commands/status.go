package commands

import (
	"context"
	"fmt"
	"time"

	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// Status summarizes a board's capture history for the capture workflow.
type Status struct {
	Board          string `json:"board"`
	DisplayName    string `json:"display_name"`
	TotalSnapshots int    `json:"total_snapshots"`
	LastTimestamp  string `json:"last_timestamp,omitempty"`
	LastAgo        string `json:"last_ago,omitempty"`
	LastNodeCount  int    `json:"last_node_count,omitempty"`
	Dir            string `json:"dir"`
}

// StatusCommand reports when a board was last captured.
type StatusCommand struct {
	store       ports.SnapshotStore
	index       ports.SnapshotIndex
	Board       string
	DisplayName string
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(store ports.SnapshotStore, index ports.SnapshotIndex, board, displayName string) *StatusCommand {
	return &StatusCommand{store: store, index: index, Board: board, DisplayName: displayName}
}

// Execute gathers the board's snapshot status.
func (c *StatusCommand) Execute(ctx context.Context) (*Status, error) {
	metas, err := listMetas(c.store, c.index, c.Board)
	if err != nil {
		return nil, err
	}

	status := &Status{
		Board:          c.Board,
		DisplayName:    c.DisplayName,
		TotalSnapshots: len(metas),
		Dir:            c.store.Dir(c.Board),
	}
	if len(metas) > 0 {
		latest := metas[0]
		status.LastTimestamp = latest.Timestamp
		status.LastAgo = TimeAgo(latest.Timestamp, time.Now())
		status.LastNodeCount = latest.NodeCount
	}
	return status, nil
}

// TimeAgo renders a snapshot timestamp as a human "time ago" phrase.
func TimeAgo(timestamp string, now time.Time) string {
	t, err := time.ParseInLocation(domain.TimestampFormat, timestamp, now.Location())
	if err != nil {
		return "unknown"
	}

	diff := now.Sub(t)
	switch {
	case diff >= 24*time.Hour:
		return plural(int(diff.Hours())/24, "day")
	case diff >= time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff >= time.Minute:
		return plural(int(diff.Minutes()), "minute")
	default:
		return "just now"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
