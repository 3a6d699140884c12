package ports

import "figtrack/internal/domain"

// SnapshotStore persists and retrieves board snapshots. Snapshots are owned
// by the store once saved; callers get read-only copies back.
type SnapshotStore interface {
	// Save writes the snapshot under its board and timestamp and returns
	// the path it was written to.
	Save(snap *domain.Snapshot) (string, error)

	// Load fetches the full snapshot for a board at a timestamp.
	Load(board, timestamp string) (*domain.Snapshot, error)

	// LoadLatest fetches the most recent snapshot for a board.
	LoadLatest(board string) (*domain.Snapshot, error)

	// List returns snapshot metadata for a board, most recent first.
	List(board string) ([]domain.SnapshotMeta, error)

	// Dir returns the storage directory for a board.
	Dir(board string) string
}
