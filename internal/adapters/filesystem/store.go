package filesystem

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"figtrack/internal/application"
	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// Store implements ports.SnapshotStore on a data directory. Each board gets
// its own subdirectory holding one <timestamp>.json document per snapshot.
type Store struct {
	dataDir string
	logger  *slog.Logger
}

// Ensure Store implements SnapshotStore
var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a new filesystem store rooted at dataDir.
func NewStore(dataDir string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~") {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, dataDir[1:])
	}
	return &Store{
		dataDir: dataDir,
		logger:  slog.Default().With("component", "snapshot-store"),
	}
}

// Save writes the snapshot document under its board and timestamp.
func (s *Store) Save(snap *domain.Snapshot) (string, error) {
	dir := s.Dir(snap.BoardName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create board directory: %w", err)
	}

	data, err := domain.EncodeDocument(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	path := filepath.Join(dir, snap.Timestamp+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	s.logger.Info("saved snapshot",
		"board", snap.BoardName,
		"timestamp", snap.Timestamp,
		"nodes", snap.NodeCount,
		"path", path)
	return path, nil
}

// Load fetches and re-validates one snapshot document.
func (s *Store) Load(board, timestamp string) (*domain.Snapshot, error) {
	path := filepath.Join(s.Dir(board), timestamp+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s/%s: %w", board, timestamp, application.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	snap, warn, err := domain.ParseDocument(data, board)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s/%s: %w", board, timestamp, err)
	}
	if warn != nil {
		s.logger.Warn("snapshot count mismatch",
			"board", board, "timestamp", timestamp, "warning", warn.Error())
	}
	return snap, nil
}

// LoadLatest fetches the most recent snapshot for a board.
func (s *Store) LoadLatest(board string) (*domain.Snapshot, error) {
	metas, err := s.List(board)
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, fmt.Errorf("%s: %w", board, application.ErrSnapshotNotFound)
	}
	return s.Load(board, metas[0].Timestamp)
}

// List scans the board directory for snapshot documents, most recent first.
// A missing directory is an empty history, not an error.
func (s *Store) List(board string) ([]domain.SnapshotMeta, error) {
	entries, err := os.ReadDir(s.Dir(board))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read board directory: %w", err)
	}

	var metas []domain.SnapshotMeta
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		meta := domain.SnapshotMeta{
			Timestamp: strings.TrimSuffix(name, ".json"),
			Filename:  name,
		}
		if info, err := entry.Info(); err == nil {
			meta.CreatedAt = info.ModTime().UTC().Format(time.RFC3339)
		}
		if header, err := s.readHeader(board, name); err == nil {
			meta.NodeCount = header.NodeCount
			meta.SectionName = header.SectionName
		} else {
			s.logger.Warn("unreadable snapshot skipped in listing",
				"board", board, "file", name, "err", err)
			continue
		}
		metas = append(metas, meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp > metas[j].Timestamp
	})
	return metas, nil
}

// Dir returns the storage directory for a board.
func (s *Store) Dir(board string) string {
	return filepath.Join(s.dataDir, board)
}

func (s *Store) readHeader(board, filename string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir(board), filename))
	if err != nil {
		return nil, err
	}
	snap, _, err := domain.ParseDocument(data, board)
	return snap, err
}
