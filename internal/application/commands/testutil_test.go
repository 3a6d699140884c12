package commands

import (
	"fmt"
	"path/filepath"
	"sort"

	"figtrack/internal/application"
	"figtrack/internal/domain"
)

// fakeStore is an in-memory ports.SnapshotStore for command tests.
type fakeStore struct {
	snaps map[string]map[string]*domain.Snapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{snaps: make(map[string]map[string]*domain.Snapshot)}
}

func (s *fakeStore) Save(snap *domain.Snapshot) (string, error) {
	board := snap.BoardName
	if s.snaps[board] == nil {
		s.snaps[board] = make(map[string]*domain.Snapshot)
	}
	s.snaps[board][snap.Timestamp] = snap
	return filepath.Join(s.Dir(board), snap.Timestamp+".json"), nil
}

func (s *fakeStore) Load(board, timestamp string) (*domain.Snapshot, error) {
	snap, ok := s.snaps[board][timestamp]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", board, timestamp, application.ErrSnapshotNotFound)
	}
	return snap, nil
}

func (s *fakeStore) LoadLatest(board string) (*domain.Snapshot, error) {
	metas, _ := s.List(board)
	if len(metas) == 0 {
		return nil, fmt.Errorf("%s: %w", board, application.ErrSnapshotNotFound)
	}
	return s.snaps[board][metas[0].Timestamp], nil
}

func (s *fakeStore) List(board string) ([]domain.SnapshotMeta, error) {
	var metas []domain.SnapshotMeta
	for _, snap := range s.snaps[board] {
		metas = append(metas, snap.Meta())
	}
	sort.Slice(metas, func(i, j int) bool {
		return metas[i].Timestamp > metas[j].Timestamp
	})
	return metas, nil
}

func (s *fakeStore) Dir(board string) string {
	return filepath.Join("/data", board)
}

// fakeIndex is an in-memory ports.SnapshotIndex.
type fakeIndex struct {
	metas    map[string][]domain.SnapshotMeta
	rebuilds int
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{metas: make(map[string][]domain.SnapshotMeta)}
}

func (i *fakeIndex) Open(dataDir string) error { return nil }
func (i *fakeIndex) Close() error              { return nil }

func (i *fakeIndex) Record(board string, meta domain.SnapshotMeta) error {
	i.metas[board] = append(i.metas[board], meta)
	sort.Slice(i.metas[board], func(a, b int) bool {
		return i.metas[board][a].Timestamp > i.metas[board][b].Timestamp
	})
	return nil
}

func (i *fakeIndex) List(board string) ([]domain.SnapshotMeta, error) {
	return i.metas[board], nil
}

func (i *fakeIndex) Rebuild(board string, metas []domain.SnapshotMeta) error {
	i.metas[board] = append([]domain.SnapshotMeta(nil), metas...)
	i.rebuilds++
	return nil
}

func storedSnapshot(board, timestamp string, nodes ...domain.Node) *domain.Snapshot {
	return &domain.Snapshot{
		BoardName: board,
		FileKey:   "file-key",
		NodeID:    "0:1",
		Timestamp: timestamp,
		NodeCount: len(nodes),
		Nodes:     nodes,
	}
}
