package commands

import (
	"context"

	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// ListSnapshotsCommand lists a board's snapshot history, most recent first.
type ListSnapshotsCommand struct {
	store ports.SnapshotStore
	index ports.SnapshotIndex
	Board string
}

// NewListSnapshotsCommand creates a new ListSnapshotsCommand
func NewListSnapshotsCommand(store ports.SnapshotStore, index ports.SnapshotIndex, board string) *ListSnapshotsCommand {
	return &ListSnapshotsCommand{store: store, index: index, Board: board}
}

// Execute returns the board's snapshot metadata, most recent first.
func (c *ListSnapshotsCommand) Execute(ctx context.Context) ([]domain.SnapshotMeta, error) {
	return listMetas(c.store, c.index, c.Board)
}

// listMetas answers from the index when it has entries and falls back to a
// store scan otherwise, repopulating the index from the scan. An index
// rebuild failure must not block listing; the store stays the source of
// truth.
func listMetas(store ports.SnapshotStore, index ports.SnapshotIndex, board string) ([]domain.SnapshotMeta, error) {
	if index != nil {
		metas, err := index.List(board)
		if err == nil && len(metas) > 0 {
			return metas, nil
		}
	}

	metas, err := store.List(board)
	if err != nil {
		return nil, err
	}
	if index != nil && len(metas) > 0 {
		_ = index.Rebuild(board, metas)
	}
	return metas, nil
}
