package domain

import (
	"fmt"
	"time"
)

// TimestampFormat is the capture-instant layout. It sorts lexicographically,
// so the timestamp doubles as the storage key.
const TimestampFormat = "2006-01-02_150405"

// NewTimestamp formats a capture instant as a snapshot timestamp.
func NewTimestamp(t time.Time) string {
	return t.Format(TimestampFormat)
}

// Snapshot is one capture of a board state. It is created once by a parser
// and never mutated; a new capture is always a new Snapshot.
type Snapshot struct {
	BoardName   string `json:"board_name"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	Timestamp   string `json:"timestamp"`
	SectionName string `json:"section_name,omitempty"`
	SectionID   string `json:"section_id,omitempty"`
	NodeCount   int    `json:"node_count"`
	Nodes       []Node `json:"nodes"`
}

// SnapshotMeta is the lightweight index record kept per snapshot.
type SnapshotMeta struct {
	Timestamp   string `json:"timestamp"`
	Filename    string `json:"filename"`
	NodeCount   int    `json:"node_count"`
	SectionName string `json:"section_name,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Meta returns the index record for the snapshot.
func (s *Snapshot) Meta() SnapshotMeta {
	return SnapshotMeta{
		Timestamp:   s.Timestamp,
		Filename:    s.Timestamp + ".json",
		NodeCount:   s.NodeCount,
		SectionName: s.SectionName,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
}

// TypeCounts returns the number of nodes per node type.
func (s *Snapshot) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for _, n := range s.Nodes {
		counts[string(n.NodeType)]++
	}
	return counts
}

// Validate checks the snapshot's node collection invariants: every node has a
// non-empty ID unique within the snapshot.
func (s *Snapshot) Validate() error {
	_, err := s.nodeIndex()
	return err
}

// nodeIndex builds the ID → Node identity index. Identity matching is
// undefined when IDs repeat, so duplicates are an error rather than a
// silent pick.
func (s *Snapshot) nodeIndex() (map[string]Node, error) {
	index := make(map[string]Node, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.ID == "" {
			return nil, &MalformedSnapshotError{Field: fmt.Sprintf("nodes[%d].id", i)}
		}
		if _, ok := index[n.ID]; ok {
			return nil, &DuplicateNodeIDError{ID: n.ID}
		}
		index[n.ID] = n
	}
	return index, nil
}

// MalformedSnapshotError reports a snapshot payload missing a required field.
type MalformedSnapshotError struct {
	Field string
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed snapshot: missing %s", e.Field)
}

// DuplicateNodeIDError reports a snapshot whose node collection violates
// ID uniqueness.
type DuplicateNodeIDError struct {
	ID string
}

func (e *DuplicateNodeIDError) Error() string {
	return fmt.Sprintf("duplicate node id %q in snapshot", e.ID)
}

// CountMismatchWarning reports a stated node_count that disagrees with the
// parsed node collection. Parsing proceeds with the computed count.
type CountMismatchWarning struct {
	Stated   int
	Computed int
}

func (w *CountMismatchWarning) Error() string {
	return fmt.Sprintf("node_count mismatch: document says %d, parsed %d", w.Stated, w.Computed)
}
