package commands

import (
	"context"

	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// Summary describes one stored snapshot.
type Summary struct {
	BoardName   string         `json:"board_name"`
	Timestamp   string         `json:"timestamp"`
	SectionName string         `json:"section_name,omitempty"`
	TotalNodes  int            `json:"total_nodes"`
	NodeTypes   map[string]int `json:"node_types"`
}

// SummaryCommand summarizes a snapshot: the latest one, or an explicit
// timestamp when set.
type SummaryCommand struct {
	store     ports.SnapshotStore
	Board     string
	Timestamp string
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(store ports.SnapshotStore, board, timestamp string) *SummaryCommand {
	return &SummaryCommand{store: store, Board: board, Timestamp: timestamp}
}

// Execute loads the snapshot and derives its summary.
func (c *SummaryCommand) Execute(ctx context.Context) (*Summary, error) {
	var snap *domain.Snapshot
	var err error
	if c.Timestamp == "" {
		snap, err = c.store.LoadLatest(c.Board)
	} else {
		snap, err = c.store.Load(c.Board, c.Timestamp)
	}
	if err != nil {
		return nil, err
	}

	return &Summary{
		BoardName:   snap.BoardName,
		Timestamp:   snap.Timestamp,
		SectionName: snap.SectionName,
		TotalNodes:  len(snap.Nodes),
		NodeTypes:   snap.TypeCounts(),
	}, nil
}
