package views

import (
	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

// SwitchToBoardsMsg returns to the board list.
type SwitchToBoardsMsg struct{}

// SwitchToSnapshotsMsg opens the snapshot history of a board.
type SwitchToSnapshotsMsg struct {
	Board ports.BoardRef
}

// SwitchToReportMsg opens the change report between two snapshots of a board.
type SwitchToReportMsg struct {
	Board ports.BoardRef
	From  string
	To    string
}

// SwitchToHelpMsg opens the help view.
type SwitchToHelpMsg struct{}

// Shared internal messages

type errMsg struct {
	err error
}

type metasLoadedMsg struct {
	metas []domain.SnapshotMeta
}
