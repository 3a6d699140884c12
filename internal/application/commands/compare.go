package commands

import (
	"context"
	"fmt"

	"figtrack/internal/application"
	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// CompareCommand diffs two snapshots of a board. From and To are explicit
// timestamps; either may be empty, in which case the most recent history is
// used (To → latest, From → second-latest).
type CompareCommand struct {
	store ports.SnapshotStore
	index ports.SnapshotIndex
	Board string
	From  string
	To    string
}

// NewCompareCommand creates a new CompareCommand
func NewCompareCommand(store ports.SnapshotStore, index ports.SnapshotIndex, board, from, to string) *CompareCommand {
	return &CompareCommand{store: store, index: index, Board: board, From: from, To: to}
}

// Execute resolves the comparison pair, loads both snapshots and diffs them.
func (c *CompareCommand) Execute(ctx context.Context) (*domain.ComparisonResult, error) {
	from, to, err := c.resolveTimestamps()
	if err != nil {
		return nil, err
	}

	oldSnap, err := c.store.Load(c.Board, from)
	if err != nil {
		return nil, err
	}
	newSnap, err := c.store.Load(c.Board, to)
	if err != nil {
		return nil, err
	}

	return domain.Compare(oldSnap, newSnap)
}

func (c *CompareCommand) resolveTimestamps() (from, to string, err error) {
	from, to = c.From, c.To
	if from != "" && to != "" {
		return from, to, nil
	}

	metas, err := listMetas(c.store, c.index, c.Board)
	if err != nil {
		return "", "", err
	}

	if to == "" {
		if len(metas) < 1 {
			return "", "", fmt.Errorf("board %q: %w", c.Board, application.ErrInsufficientHistory)
		}
		to = metas[0].Timestamp
	}
	if from == "" {
		if len(metas) < 2 {
			return "", "", fmt.Errorf("board %q: %w", c.Board, application.ErrInsufficientHistory)
		}
		from = metas[1].Timestamp
	}
	return from, to, nil
}
