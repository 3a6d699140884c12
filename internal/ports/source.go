package ports

import "context"

// BoardRef identifies a configured board to a capture source.
type BoardRef struct {
	Name        string
	DisplayName string
	FileKey     string
	NodeID      string
	URL         string
}

// CaptureSource produces raw board payloads. Capture is human-in-the-loop:
// a source may shell out to an AI assistant, and callers must not assume the
// payload arrives quickly or at all.
type CaptureSource interface {
	// Fetch returns the raw FigJam payload for a board.
	Fetch(ctx context.Context, board BoardRef) (string, error)

	// IsAvailable returns true if the source can be invoked at all
	// (e.g. the claude CLI is on PATH).
	IsAvailable() bool
}
