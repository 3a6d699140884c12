package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"figtrack/internal/application"
	"figtrack/internal/domain"
	"figtrack/internal/figjam"
	"figtrack/internal/ports"
)

// CaptureResult is the outcome of ingesting one raw capture payload.
type CaptureResult struct {
	Snapshot *domain.Snapshot
	Warning  *domain.CountMismatchWarning
	Path     string
	// Report diffs the new snapshot against the previous one; nil on the
	// first capture or when comparison was not requested.
	Report *domain.ComparisonResult
}

// CaptureCommand parses a raw payload into a snapshot, persists it and
// records it in the index. Payloads may be a snapshot document (JSON) or a
// raw FigJam response; the parse is pure and persistence is a separate step,
// both of which happen here.
type CaptureCommand struct {
	store ports.SnapshotStore
	index ports.SnapshotIndex
	Board ports.BoardRef
	Raw   string
	// Compare controls whether the new snapshot is diffed against the
	// previous latest.
	Compare bool

	now func() time.Time
}

// NewCaptureCommand creates a new CaptureCommand
func NewCaptureCommand(store ports.SnapshotStore, index ports.SnapshotIndex, board ports.BoardRef, raw string) *CaptureCommand {
	return &CaptureCommand{
		store:   store,
		index:   index,
		Board:   board,
		Raw:     raw,
		Compare: true,
		now:     time.Now,
	}
}

// Execute runs the capture: parse, validate, save, index, and optionally
// diff against the previous snapshot.
func (c *CaptureCommand) Execute(ctx context.Context) (*CaptureResult, error) {
	var prev *domain.Snapshot
	if c.Compare {
		var err error
		prev, err = c.store.LoadLatest(c.Board.Name)
		if err != nil && !errors.Is(err, application.ErrSnapshotNotFound) {
			return nil, err
		}
	}

	snap, warning, err := c.parse()
	if err != nil {
		return nil, err
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	path, err := c.store.Save(snap)
	if err != nil {
		return nil, err
	}
	if c.index != nil {
		if err := c.index.Record(c.Board.Name, snap.Meta()); err != nil {
			return nil, fmt.Errorf("record snapshot in index: %w", err)
		}
	}

	result := &CaptureResult{Snapshot: snap, Warning: warning, Path: path}
	if prev != nil {
		report, err := domain.Compare(prev, snap)
		if err != nil {
			return nil, err
		}
		result.Report = report
	}
	return result, nil
}

func (c *CaptureCommand) parse() (*domain.Snapshot, *domain.CountMismatchWarning, error) {
	raw := strings.TrimSpace(c.Raw)
	if strings.HasPrefix(raw, "{") {
		return domain.ParseDocument([]byte(raw), c.Board.Name)
	}

	snap := figjam.Parse(raw, figjam.Capture{
		BoardName: c.Board.Name,
		FileKey:   c.Board.FileKey,
		NodeID:    c.Board.NodeID,
		Timestamp: domain.NewTimestamp(c.now()),
	})
	return snap, nil, nil
}
