package application

import "errors"

// Sentinel errors for user-facing failure conditions. Parse and compare
// failures carry their own typed errors in the domain package.
var (
	ErrBoardNotFound       = errors.New("board not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrInsufficientHistory = errors.New("not enough snapshots to compare")
)
