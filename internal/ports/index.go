package ports

import "figtrack/internal/domain"

// SnapshotIndex provides cached access to per-board snapshot metadata so
// listing and latest-pair queries don't have to scan snapshot files.
type SnapshotIndex interface {
	// Lifecycle
	Open(dataDir string) error
	Close() error

	// Record adds or replaces the index entry for one snapshot.
	Record(board string, meta domain.SnapshotMeta) error

	// List returns index entries for a board, most recent first.
	List(board string) ([]domain.SnapshotMeta, error)

	// Rebuild replaces a board's index entries wholesale, typically from a
	// store directory scan.
	Rebuild(board string, metas []domain.SnapshotMeta) error
}
