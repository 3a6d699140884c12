package commands

import (
	"context"
	"errors"
	"testing"

	"figtrack/internal/application"
	"figtrack/internal/domain"
)

func TestCompareCommandLatestPair(t *testing.T) {
	store := newFakeStore()
	store.Save(storedSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "old"},
	))
	store.Save(storedSnapshot("decision-tree", "2025-01-02_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "old"},
		domain.Node{ID: "1:2", NodeType: domain.NodeSticky, Text: "new"},
	))
	store.Save(storedSnapshot("decision-tree", "2025-01-03_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "edited"},
		domain.Node{ID: "1:2", NodeType: domain.NodeSticky, Text: "new"},
	))

	cmd := NewCompareCommand(store, newFakeIndex(), "decision-tree", "", "")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Default pair is the two most recent snapshots.
	if result.FromTimestamp != "2025-01-02_100000" || result.ToTimestamp != "2025-01-03_100000" {
		t.Errorf("unexpected pair: %s -> %s", result.FromTimestamp, result.ToTimestamp)
	}
	if len(result.Modified) != 1 || result.Modified[0].ID != "1:1" {
		t.Errorf("expected 1:1 modified, got %v", result.Modified)
	}
}

func TestCompareCommandExplicitFrom(t *testing.T) {
	store := newFakeStore()
	store.Save(storedSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "v1"},
	))
	store.Save(storedSnapshot("decision-tree", "2025-01-02_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "v2"},
	))
	store.Save(storedSnapshot("decision-tree", "2025-01-03_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "v3"},
	))

	cmd := NewCompareCommand(store, newFakeIndex(), "decision-tree", "2025-01-01_100000", "")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.FromTimestamp != "2025-01-01_100000" || result.ToTimestamp != "2025-01-03_100000" {
		t.Errorf("explicit from should pair with latest, got %s -> %s",
			result.FromTimestamp, result.ToTimestamp)
	}
	if len(result.Modified) != 1 || result.Modified[0].OldText != "v1" || result.Modified[0].NewText != "v3" {
		t.Errorf("unexpected modification: %v", result.Modified)
	}
}

func TestCompareCommandInsufficientHistory(t *testing.T) {
	store := newFakeStore()
	store.Save(storedSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "only"},
	))

	cmd := NewCompareCommand(store, newFakeIndex(), "decision-tree", "", "")
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestCompareCommandEmptyBoard(t *testing.T) {
	cmd := NewCompareCommand(newFakeStore(), newFakeIndex(), "decision-tree", "", "")
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestCompareCommandUnknownTimestamp(t *testing.T) {
	store := newFakeStore()
	store.Save(storedSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "a"},
	))
	store.Save(storedSnapshot("decision-tree", "2025-01-02_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "b"},
	))

	cmd := NewCompareCommand(store, newFakeIndex(), "decision-tree", "2020-01-01_000000", "2025-01-02_100000")
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestListSnapshotsRebuildsEmptyIndex(t *testing.T) {
	store := newFakeStore()
	store.Save(storedSnapshot("decision-tree", "2025-01-01_100000"))
	store.Save(storedSnapshot("decision-tree", "2025-01-02_100000"))
	index := newFakeIndex()

	cmd := NewListSnapshotsCommand(store, index, "decision-tree")
	metas, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(metas) != 2 || metas[0].Timestamp != "2025-01-02_100000" {
		t.Errorf("expected most-recent-first listing, got %v", metas)
	}
	if index.rebuilds != 1 {
		t.Errorf("expected index rebuild from store scan, got %d", index.rebuilds)
	}

	// Second listing is served from the index.
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.rebuilds != 1 {
		t.Errorf("populated index should not be rebuilt again, got %d", index.rebuilds)
	}
}
