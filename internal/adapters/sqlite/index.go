package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"figtrack/internal/domain"
	"figtrack/internal/ports"

	_ "modernc.org/sqlite"
)

// Index implements ports.SnapshotIndex using SQLite. It is a cache over the
// snapshot files; the store directory scan can rebuild it at any time.
type Index struct {
	db      *sql.DB
	dataDir string
	dbPath  string
	logger  *slog.Logger
}

// Ensure Index implements SnapshotIndex
var _ ports.SnapshotIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{logger: slog.Default().With("component", "snapshot-index")}
}

// Open initializes the index database inside the data directory.
func (idx *Index) Open(dataDir string) error {
	// Expand ~ in path
	if strings.HasPrefix(dataDir, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[1:])
	}

	idx.dataDir = dataDir
	idx.dbPath = filepath.Join(dataDir, "index.db")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS snapshots (
			board TEXT NOT NULL,
			timestamp TEXT NOT NULL,
			filename TEXT NOT NULL,
			node_count INTEGER NOT NULL,
			section_name TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (board, timestamp)
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_board ON snapshots(board, timestamp DESC);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Record adds or replaces the index entry for one snapshot.
func (idx *Index) Record(board string, meta domain.SnapshotMeta) error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO snapshots (board, timestamp, filename, node_count, section_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		board, meta.Timestamp, meta.Filename, meta.NodeCount, meta.SectionName, meta.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}
	return nil
}

// List returns index entries for a board, most recent first.
func (idx *Index) List(board string) ([]domain.SnapshotMeta, error) {
	rows, err := idx.db.Query(`
		SELECT timestamp, filename, node_count, section_name, created_at
		FROM snapshots WHERE board = ?
		ORDER BY timestamp DESC`, board)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var metas []domain.SnapshotMeta
	for rows.Next() {
		var m domain.SnapshotMeta
		if err := rows.Scan(&m.Timestamp, &m.Filename, &m.NodeCount, &m.SectionName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Rebuild replaces a board's entries with the given metadata, atomically.
func (idx *Index) Rebuild(board string, metas []domain.SnapshotMeta) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM snapshots WHERE board = ?`, board); err != nil {
		return fmt.Errorf("failed to clear board entries: %w", err)
	}
	for _, m := range metas {
		_, err := tx.Exec(`
			INSERT INTO snapshots (board, timestamp, filename, node_count, section_name, created_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			board, m.Timestamp, m.Filename, m.NodeCount, m.SectionName, m.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert snapshot entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rebuild: %w", err)
	}
	idx.logger.Info("rebuilt snapshot index", "board", board, "entries", len(metas))
	return nil
}
