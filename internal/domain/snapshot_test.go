package domain

import (
	"errors"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []Node
		wantErr bool
	}{
		{
			name:  "unique ids",
			nodes: []Node{{ID: "1:1", NodeType: NodeSticky}, {ID: "1:2", NodeType: NodeText}},
		},
		{
			name:    "duplicate ids",
			nodes:   []Node{{ID: "1:1", NodeType: NodeSticky}, {ID: "1:1", NodeType: NodeSticky}},
			wantErr: true,
		},
		{
			name:    "empty id",
			nodes:   []Node{{ID: "", NodeType: NodeSticky}},
			wantErr: true,
		},
		{
			name:  "no nodes",
			nodes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshotWith("2025-01-01_100000", tt.nodes...)
			err := snap.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDuplicateError(t *testing.T) {
	snap := snapshotWith("2025-01-01_100000",
		Node{ID: "9:9", NodeType: NodeSticky},
		Node{ID: "9:9", NodeType: NodeSticky},
	)

	err := snap.Validate()
	var dup *DuplicateNodeIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNodeIDError, got %v", err)
	}
	if dup.ID != "9:9" {
		t.Errorf("expected offending id 9:9, got %q", dup.ID)
	}
}

func TestTypeCounts(t *testing.T) {
	snap := snapshotWith("2025-01-01_100000",
		Node{ID: "1", NodeType: NodeSticky},
		Node{ID: "2", NodeType: NodeSticky},
		Node{ID: "3", NodeType: NodeConnector},
		Node{ID: "4", NodeType: NodeShapeWithText},
	)

	counts := snap.TypeCounts()
	if counts["sticky"] != 2 || counts["connector"] != 1 || counts["shape-with-text"] != 1 {
		t.Errorf("unexpected type counts: %v", counts)
	}
	if counts["text"] != 0 {
		t.Errorf("absent type should count 0, got %d", counts["text"])
	}
}

func TestNewTimestampSortable(t *testing.T) {
	earlier := NewTimestamp(time.Date(2025, 1, 15, 9, 30, 0, 0, time.UTC))
	later := NewTimestamp(time.Date(2025, 1, 15, 14, 5, 7, 0, time.UTC))

	if earlier != "2025-01-15_093000" {
		t.Errorf("unexpected timestamp format: %s", earlier)
	}
	if !(earlier < later) {
		t.Errorf("timestamps must sort lexicographically: %s vs %s", earlier, later)
	}
}

func TestMeta(t *testing.T) {
	snap := snapshotWith("2025-01-01_100000",
		Node{ID: "1:1", NodeType: NodeSticky},
	)
	snap.SectionName = "Phase 1"

	meta := snap.Meta()
	if meta.Timestamp != "2025-01-01_100000" || meta.Filename != "2025-01-01_100000.json" {
		t.Errorf("unexpected meta identity: %+v", meta)
	}
	if meta.NodeCount != 1 || meta.SectionName != "Phase 1" {
		t.Errorf("unexpected meta detail: %+v", meta)
	}
	if meta.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
}
