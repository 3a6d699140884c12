package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"figtrack/internal/application"
	"figtrack/internal/domain"
)

func testSnapshot(board, timestamp string, nodes ...domain.Node) *domain.Snapshot {
	return &domain.Snapshot{
		BoardName:   board,
		FileKey:     "file-key",
		NodeID:      "0:1",
		Timestamp:   timestamp,
		SectionName: "Phase 1",
		NodeCount:   len(nodes),
		Nodes:       nodes,
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	snap := testSnapshot("decision-tree", "2025-01-15_120000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "Yes", Author: "emilio"},
		domain.Node{ID: "1:2", NodeType: domain.NodeConnector, ConnectorStart: "1:1", ConnectorEnd: "1:3"},
	)

	path, err := store.Save(snap)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	if filepath.Base(path) != "2025-01-15_120000.json" {
		t.Errorf("snapshot filename should be the timestamp, got %s", path)
	}

	loaded, err := store.Load("decision-tree", "2025-01-15_120000")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.SectionName != "Phase 1" || len(loaded.Nodes) != 2 {
		t.Errorf("snapshot changed in round trip: %+v", loaded)
	}
	for i := range snap.Nodes {
		if loaded.Nodes[i] != snap.Nodes[i] {
			t.Errorf("node %d changed: %+v vs %+v", i, loaded.Nodes[i], snap.Nodes[i])
		}
	}

	// Stored form still diffs cleanly against the in-memory original.
	result, err := domain.Compare(snap, loaded)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if result.HasChanges() {
		t.Errorf("store round trip introduced changes: %+v", result)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load("decision-tree", "2020-01-01_000000")
	if !errors.Is(err, application.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestStoreListOrdering(t *testing.T) {
	store := NewStore(t.TempDir())

	for _, ts := range []string{"2025-01-02_100000", "2025-01-01_100000", "2025-01-03_100000"} {
		if _, err := store.Save(testSnapshot("decision-tree", ts,
			domain.Node{ID: "1:1", NodeType: domain.NodeSticky},
		)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	metas, err := store.List("decision-tree")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	want := []string{"2025-01-03_100000", "2025-01-02_100000", "2025-01-01_100000"}
	if len(metas) != len(want) {
		t.Fatalf("expected %d snapshots, got %d", len(want), len(metas))
	}
	for i, ts := range want {
		if metas[i].Timestamp != ts {
			t.Errorf("metas[%d] = %s, want %s (most recent first)", i, metas[i].Timestamp, ts)
		}
	}
	if metas[0].NodeCount != 1 || metas[0].SectionName != "Phase 1" {
		t.Errorf("meta detail not populated: %+v", metas[0])
	}
}

func TestStoreListEmptyBoard(t *testing.T) {
	store := NewStore(t.TempDir())

	metas, err := store.List("never-captured")
	if err != nil {
		t.Fatalf("missing board dir must not be an error: %v", err)
	}
	if len(metas) != 0 {
		t.Errorf("expected empty history, got %v", metas)
	}
}

func TestStoreLoadLatest(t *testing.T) {
	store := NewStore(t.TempDir())

	store.Save(testSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "old"},
	))
	store.Save(testSnapshot("decision-tree", "2025-01-02_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "new"},
	))

	latest, err := store.LoadLatest("decision-tree")
	if err != nil {
		t.Fatalf("load latest failed: %v", err)
	}
	if latest.Timestamp != "2025-01-02_100000" {
		t.Errorf("expected latest snapshot, got %s", latest.Timestamp)
	}

	_, err = store.LoadLatest("never-captured")
	if !errors.Is(err, application.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound for empty board, got %v", err)
	}
}

func TestStoreListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	store.Save(testSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky},
	))
	os.WriteFile(filepath.Join(dir, "decision-tree", "notes.txt"), []byte("not a snapshot"), 0644)
	os.WriteFile(filepath.Join(dir, "decision-tree", "broken.json"), []byte("{"), 0644)

	metas, err := store.List("decision-tree")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(metas) != 1 || metas[0].Timestamp != "2025-01-01_100000" {
		t.Errorf("foreign files must be skipped, got %v", metas)
	}
}
