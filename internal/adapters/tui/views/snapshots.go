package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"figtrack/internal/adapters/tui/styles"
	"figtrack/internal/application/commands"
	"figtrack/internal/domain"
	"figtrack/internal/ports"
)

// SnapshotsKeyMap defines key bindings for the snapshot history view
type SnapshotsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Latest key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var SnapshotsKeys = SnapshotsKeyMap{
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
		key.WithHelp("enter", "diff vs previous"),
	),
	Latest: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "diff latest two"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "h", "left"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// SnapshotsModel lists a board's snapshot history, most recent first.
type SnapshotsModel struct {
	ViewState
	store  ports.SnapshotStore
	index  ports.SnapshotIndex
	board  ports.BoardRef
	metas  []domain.SnapshotMeta
	cursor int
}

// NewSnapshotsModel creates a new snapshot history model
func NewSnapshotsModel(store ports.SnapshotStore, index ports.SnapshotIndex) *SnapshotsModel {
	return &SnapshotsModel{store: store, index: index}
}

// SetBoard points the view at a board and resets the cursor.
func (m *SnapshotsModel) SetBoard(board ports.BoardRef) {
	m.board = board
	m.cursor = 0
	m.metas = nil
	m.ClearMessage()
}

// Init initializes the snapshot history view
func (m *SnapshotsModel) Init() tea.Cmd {
	return m.loadMetas
}

func (m *SnapshotsModel) loadMetas() tea.Msg {
	metas, err := commands.NewListSnapshotsCommand(m.store, m.index, m.board.Name).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return metasLoadedMsg{metas}
}

// Update handles messages for the snapshot history view
func (m *SnapshotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case metasLoadedMsg:
		m.metas = msg.metas
		if m.cursor >= len(m.metas) {
			m.cursor = 0
		}
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, SnapshotsKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, SnapshotsKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBoardsMsg{}
			}

		case key.Matches(msg, SnapshotsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, SnapshotsKeys.Down):
			if m.cursor < len(m.metas)-1 {
				m.cursor++
			}

		case key.Matches(msg, SnapshotsKeys.Enter):
			// Diff the selected snapshot against the one captured before it.
			if m.cursor+1 < len(m.metas) {
				board := m.board
				from := m.metas[m.cursor+1].Timestamp
				to := m.metas[m.cursor].Timestamp
				return m, func() tea.Msg {
					return SwitchToReportMsg{Board: board, From: from, To: to}
				}
			}
			m.SetMessage("no earlier snapshot to compare against", false)

		case key.Matches(msg, SnapshotsKeys.Latest):
			if len(m.metas) >= 2 {
				board := m.board
				return m, func() tea.Msg {
					return SwitchToReportMsg{Board: board, From: m.metas[1].Timestamp, To: m.metas[0].Timestamp}
				}
			}
			m.SetMessage("need at least two snapshots to compare", false)
		}
	}

	return m, nil
}

// View renders the snapshot history
func (m *SnapshotsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.board.DisplayName))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d snapshots", len(m.metas))))
	b.WriteString("\n\n")

	if len(m.metas) == 0 {
		b.WriteString(styles.MutedText.Render("No snapshots captured yet."))
		b.WriteString("\n")
	}
	for i, meta := range m.metas {
		line := fmt.Sprintf("%s  %4d nodes", meta.Timestamp, meta.NodeCount)
		if meta.SectionName != "" {
			line += fmt.Sprintf("  [%s]", meta.SectionName)
		}
		if i == m.cursor {
			b.WriteString(styles.RowSelected.Render(line))
		} else {
			b.WriteString(styles.Row.Render(line))
		}
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
	b.WriteString(styles.HelpDesc.Render("enter diff vs previous · d diff latest two · esc back · q quit"))
	return styles.App.Render(b.String())
}
