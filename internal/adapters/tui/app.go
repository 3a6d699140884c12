// Package tui is a read-only terminal browser over the snapshot store:
// boards, their histories and change reports between snapshots.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"figtrack/internal/adapters/tui/views"
	"figtrack/internal/config"
	"figtrack/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoards ViewState = iota
	ViewSnapshots
	ViewReport
	ViewHelp
)

// App is the main TUI application model
type App struct {
	state     ViewState
	boards    *views.BoardsModel
	snapshots *views.SnapshotsModel
	report    *views.ReportModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) *App {
	return &App{
		state:     ViewBoards,
		boards:    views.NewBoardsModel(cfg, store, index),
		snapshots: views.NewSnapshotsModel(store, index),
		report:    views.NewReportModel(store, index),
		help:      views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.boards.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.boards.SetSize(msg.Width, msg.Height)
		a.snapshots.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		// The report view also resizes its viewport.
		_, cmd := a.report.Update(msg)
		return a, cmd

	// View switching messages
	case views.SwitchToBoardsMsg:
		a.state = ViewBoards
		return a, a.boards.Reload()

	case views.SwitchToSnapshotsMsg:
		a.state = ViewSnapshots
		a.snapshots.SetBoard(msg.Board)
		return a, a.snapshots.Init()

	case views.SwitchToReportMsg:
		a.state = ViewReport
		a.report.SetComparison(msg.Board, msg.From, msg.To)
		return a, a.report.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoards:
		_, cmd = a.boards.Update(msg)
	case ViewSnapshots:
		_, cmd = a.snapshots.Update(msg)
	case ViewReport:
		_, cmd = a.report.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSnapshots:
		return a.snapshots.View()
	case ViewReport:
		return a.report.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.boards.View()
	}
}
