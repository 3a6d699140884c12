package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"figtrack/internal/adapters/tui/styles"
	"figtrack/internal/application/commands"
	"figtrack/internal/config"
	"figtrack/internal/ports"
)

// BoardsKeyMap defines key bindings for the board list view
type BoardsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Help  key.Binding
	Quit  key.Binding
}

var BoardsKeys = BoardsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "open board"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type boardRow struct {
	ref    ports.BoardRef
	status *commands.Status
}

// BoardsModel lists the configured boards with their capture status.
type BoardsModel struct {
	ViewState
	cfg    *config.Config
	store  ports.SnapshotStore
	index  ports.SnapshotIndex
	rows   []boardRow
	cursor int
}

// NewBoardsModel creates a new board list model
func NewBoardsModel(cfg *config.Config, store ports.SnapshotStore, index ports.SnapshotIndex) *BoardsModel {
	return &BoardsModel{cfg: cfg, store: store, index: index}
}

// Init initializes the board list
func (m *BoardsModel) Init() tea.Cmd {
	return m.loadBoards
}

type boardsLoadedMsg struct {
	rows []boardRow
}

func (m *BoardsModel) loadBoards() tea.Msg {
	var rows []boardRow
	for _, name := range m.cfg.BoardNames() {
		ref, err := m.cfg.Ref(name)
		if err != nil {
			return errMsg{err}
		}
		status, err := commands.NewStatusCommand(m.store, m.index, name, ref.DisplayName).Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		rows = append(rows, boardRow{ref: ref, status: status})
	}
	return boardsLoadedMsg{rows}
}

// Update handles messages for the board list
func (m *BoardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardsLoadedMsg:
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, BoardsKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BoardsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, BoardsKeys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}

		case key.Matches(msg, BoardsKeys.Enter):
			if len(m.rows) > 0 {
				board := m.rows[m.cursor].ref
				return m, func() tea.Msg {
					return SwitchToSnapshotsMsg{Board: board}
				}
			}

		case key.Matches(msg, BoardsKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// Reload refreshes the board statuses
func (m *BoardsModel) Reload() tea.Cmd {
	return m.loadBoards
}

// View renders the board list
func (m *BoardsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("figtrack"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Figma board change tracker"))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(styles.MutedText.Render("No boards configured."))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		line := fmt.Sprintf("%-20s %s", row.ref.Name, row.ref.DisplayName)
		if i == m.cursor {
			b.WriteString(styles.RowSelected.Render(line))
		} else {
			b.WriteString(styles.Row.Render(line))
		}
		detail := fmt.Sprintf("  %d snapshots", row.status.TotalSnapshots)
		if row.status.LastAgo != "" {
			detail += fmt.Sprintf(", last %s", row.status.LastAgo)
		}
		b.WriteString(styles.RowDetail.Render(detail))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.MutedText.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("enter open · j/k move · ? help · q quit"))
	return styles.App.Render(b.String())
}
