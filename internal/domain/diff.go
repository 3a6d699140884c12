package domain

// Modification records a text change on a node present in both snapshots.
type Modification struct {
	ID       string   `json:"id"`
	NodeType NodeType `json:"node_type"`
	OldText  string   `json:"old_text"`
	NewText  string   `json:"new_text"`
}

// ComparisonResult is the structured diff between an old and a new snapshot
// of the same board. It is created fresh per comparison and never persisted.
type ComparisonResult struct {
	Board         string         `json:"board"`
	FromTimestamp string         `json:"from_timestamp"`
	ToTimestamp   string         `json:"to_timestamp"`
	Added         []Node         `json:"added"`
	Removed       []Node         `json:"removed"`
	Modified      []Modification `json:"modified"`
	AddedCount    int            `json:"added_count"`
	ModifiedCount int            `json:"modified_count"`
	RemovedCount  int            `json:"removed_count"`
}

// HasChanges reports whether any bucket is non-empty.
func (r *ComparisonResult) HasChanges() bool {
	return len(r.Added)+len(r.Removed)+len(r.Modified) > 0
}

// Compare diffs two snapshots by node identity.
//
// Added nodes keep newSnap's node order, removed nodes keep oldSnap's.
// A node present in both is modified only when its text differs exactly;
// position and connector-endpoint changes are not compared, and nodes with
// identical text are omitted entirely. A duplicate node ID on either side is
// a DuplicateNodeIDError.
func Compare(oldSnap, newSnap *Snapshot) (*ComparisonResult, error) {
	oldIndex, err := oldSnap.nodeIndex()
	if err != nil {
		return nil, err
	}
	newIndex, err := newSnap.nodeIndex()
	if err != nil {
		return nil, err
	}

	result := &ComparisonResult{
		Board:         newSnap.BoardName,
		FromTimestamp: oldSnap.Timestamp,
		ToTimestamp:   newSnap.Timestamp,
		Added:         []Node{},
		Removed:       []Node{},
		Modified:      []Modification{},
	}

	for _, n := range newSnap.Nodes {
		prev, ok := oldIndex[n.ID]
		switch {
		case !ok:
			result.Added = append(result.Added, n)
		case prev.Text != n.Text:
			result.Modified = append(result.Modified, Modification{
				ID:       n.ID,
				NodeType: n.NodeType,
				OldText:  prev.Text,
				NewText:  n.Text,
			})
		}
	}

	for _, n := range oldSnap.Nodes {
		if _, ok := newIndex[n.ID]; !ok {
			result.Removed = append(result.Removed, n)
		}
	}

	result.AddedCount = len(result.Added)
	result.ModifiedCount = len(result.Modified)
	result.RemovedCount = len(result.Removed)

	return result, nil
}
