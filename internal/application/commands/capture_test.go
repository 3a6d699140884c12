package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

var testBoard = ports.BoardRef{
	Name:    "decision-tree",
	FileKey: "file-key",
	NodeID:  "0:1",
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
}

func TestCaptureFigjamPayload(t *testing.T) {
	store := newFakeStore()
	index := newFakeIndex()

	cmd := NewCaptureCommand(store, index, testBoard,
		`<sticky id="1:1" author="emilio">First note</sticky>`)
	cmd.now = fixedNow

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := result.Snapshot
	if snap.BoardName != "decision-tree" || snap.FileKey != "file-key" {
		t.Errorf("board identity not applied: %+v", snap)
	}
	if snap.Timestamp != "2025-03-01_103000" {
		t.Errorf("expected capture timestamp, got %q", snap.Timestamp)
	}
	if snap.NodeCount != 1 || snap.Nodes[0].Text != "First note" {
		t.Errorf("payload not parsed: %+v", snap)
	}
	if result.Report != nil {
		t.Error("first capture has nothing to compare against")
	}

	// Persisted and indexed.
	if _, err := store.Load("decision-tree", snap.Timestamp); err != nil {
		t.Errorf("snapshot not persisted: %v", err)
	}
	if metas, _ := index.List("decision-tree"); len(metas) != 1 {
		t.Errorf("snapshot not indexed: %v", metas)
	}
}

func TestCaptureComparesAgainstPrevious(t *testing.T) {
	store := newFakeStore()
	store.Save(storedSnapshot("decision-tree", "2025-01-01_100000",
		domain.Node{ID: "1:1", NodeType: domain.NodeSticky, Text: "First note"},
	))

	cmd := NewCaptureCommand(store, newFakeIndex(), testBoard,
		`<sticky id="1:1">First note</sticky><sticky id="1:2">Second note</sticky>`)
	cmd.now = fixedNow

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Report == nil {
		t.Fatal("expected a comparison report against the previous snapshot")
	}
	if result.Report.AddedCount != 1 || result.Report.Added[0].ID != "1:2" {
		t.Errorf("expected 1:2 added, got %+v", result.Report)
	}
}

func TestCaptureDocumentPayload(t *testing.T) {
	raw := `{
		"board_name": "decision-tree",
		"file_key": "file-key",
		"node_id": "0:1",
		"timestamp": "2025-02-01_090000",
		"node_count": 3,
		"nodes": [{"id": "1:1", "node_type": "sticky", "text": "from doc"}]
	}`

	cmd := NewCaptureCommand(newFakeStore(), newFakeIndex(), testBoard, raw)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Snapshot.Timestamp != "2025-02-01_090000" {
		t.Errorf("document timestamp should win, got %q", result.Snapshot.Timestamp)
	}
	if result.Warning == nil {
		t.Error("expected count mismatch warning from stated node_count=3")
	}
}

func TestCaptureMalformedDocument(t *testing.T) {
	raw := `{"file_key": "k", "node_id": "0:1", "timestamp": "2025-02-01_090000",
		"nodes": [{"node_type": "sticky"}]}`

	cmd := NewCaptureCommand(newFakeStore(), newFakeIndex(), testBoard, raw)
	_, err := cmd.Execute(context.Background())

	var malformed *domain.MalformedSnapshotError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedSnapshotError, got %v", err)
	}
	if malformed.Field != "nodes[0].id" {
		t.Errorf("expected nodes[0].id named, got %q", malformed.Field)
	}
}

func TestCaptureDuplicateNodeIDs(t *testing.T) {
	cmd := NewCaptureCommand(newFakeStore(), newFakeIndex(), testBoard,
		`<sticky id="1:1">a</sticky><sticky id="1:1">b</sticky>`)
	cmd.now = fixedNow

	_, err := cmd.Execute(context.Background())
	var dup *domain.DuplicateNodeIDError
	if !errors.As(err, &dup) {
		t.Errorf("expected DuplicateNodeIDError, got %v", err)
	}
}
