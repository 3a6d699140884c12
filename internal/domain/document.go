package domain

import (
	"encoding/json"
	"fmt"
)

// snapshotDocument is the wire form of a snapshot. NodeCount is a pointer so
// a stated count can be told apart from an absent one.
type snapshotDocument struct {
	BoardName   string `json:"board_name"`
	FileKey     string `json:"file_key"`
	NodeID      string `json:"node_id"`
	Timestamp   string `json:"timestamp"`
	SectionName string `json:"section_name,omitempty"`
	SectionID   string `json:"section_id,omitempty"`
	NodeCount   *int   `json:"node_count,omitempty"`
	Nodes       []Node `json:"nodes"`
}

// ParseDocument converts a raw snapshot document into a validated Snapshot.
// boardName fills in the board identity when the document omits it.
//
// The parse fails with MalformedSnapshotError when the board/file/node
// identifiers are missing or a node entry lacks an id or node_type. Unknown
// node fields are tolerated. node_count is always recomputed from the parsed
// nodes; a disagreeing stated count yields a non-fatal CountMismatchWarning.
func ParseDocument(raw []byte, boardName string) (*Snapshot, *CountMismatchWarning, error) {
	var doc snapshotDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot document: %w", err)
	}

	if doc.BoardName == "" {
		doc.BoardName = boardName
	}

	for _, req := range []struct{ field, value string }{
		{"board_name", doc.BoardName},
		{"file_key", doc.FileKey},
		{"node_id", doc.NodeID},
		{"timestamp", doc.Timestamp},
	} {
		if req.value == "" {
			return nil, nil, &MalformedSnapshotError{Field: req.field}
		}
	}

	for i, n := range doc.Nodes {
		if n.ID == "" {
			return nil, nil, &MalformedSnapshotError{Field: fmt.Sprintf("nodes[%d].id", i)}
		}
		if n.NodeType == "" {
			return nil, nil, &MalformedSnapshotError{Field: fmt.Sprintf("nodes[%d].node_type", i)}
		}
	}

	snap := &Snapshot{
		BoardName:   doc.BoardName,
		FileKey:     doc.FileKey,
		NodeID:      doc.NodeID,
		Timestamp:   doc.Timestamp,
		SectionName: doc.SectionName,
		SectionID:   doc.SectionID,
		NodeCount:   len(doc.Nodes),
		Nodes:       doc.Nodes,
	}

	var warn *CountMismatchWarning
	if doc.NodeCount != nil && *doc.NodeCount != len(doc.Nodes) {
		warn = &CountMismatchWarning{Stated: *doc.NodeCount, Computed: len(doc.Nodes)}
	}

	return snap, warn, nil
}

// EncodeDocument renders the snapshot in its canonical wire form. The result
// round-trips losslessly through ParseDocument.
func EncodeDocument(s *Snapshot) ([]byte, error) {
	count := s.NodeCount
	if count != len(s.Nodes) {
		count = len(s.Nodes)
	}
	doc := snapshotDocument{
		BoardName:   s.BoardName,
		FileKey:     s.FileKey,
		NodeID:      s.NodeID,
		Timestamp:   s.Timestamp,
		SectionName: s.SectionName,
		SectionID:   s.SectionID,
		NodeCount:   &count,
		Nodes:       s.Nodes,
	}
	return json.MarshalIndent(doc, "", "  ")
}
