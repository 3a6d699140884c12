package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"figtrack/internal/adapters/tui/styles"
	"figtrack/internal/application/commands"
	"figtrack/internal/domain"
	"figtrack/internal/ports"
	"figtrack/internal/report"
)

// ReportKeyMap defines key bindings for the change report view
type ReportKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

var ReportKeys = ReportKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "h", "left"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ReportModel renders one change report in a scrollable viewport.
type ReportModel struct {
	ViewState
	store ports.SnapshotStore
	index ports.SnapshotIndex

	board ports.BoardRef
	from  string
	to    string

	viewport viewport.Model
	ready    bool
}

// NewReportModel creates a new change report model
func NewReportModel(store ports.SnapshotStore, index ports.SnapshotIndex) *ReportModel {
	return &ReportModel{store: store, index: index}
}

// SetComparison points the view at a snapshot pair.
func (m *ReportModel) SetComparison(board ports.BoardRef, from, to string) {
	m.board = board
	m.from = from
	m.to = to
	m.ready = false
	m.ClearMessage()
}

// Init initializes the report view
func (m *ReportModel) Init() tea.Cmd {
	return m.loadReport
}

type reportLoadedMsg struct {
	result *domain.ComparisonResult
}

func (m *ReportModel) loadReport() tea.Msg {
	cmd := commands.NewCompareCommand(m.store, m.index, m.board.Name, m.from, m.to)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return reportLoadedMsg{result}
}

// Update handles messages for the report view
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		if m.ready {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight(msg.Height)
		}
		return m, nil

	case reportLoadedMsg:
		m.viewport = viewport.New(m.Width, contentHeight(m.Height))
		m.viewport.SetContent(colorize(report.Text(msg.result)))
		m.ready = true
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ReportKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, ReportKeys.Back):
			board := m.board
			return m, func() tea.Msg {
				return SwitchToSnapshotsMsg{Board: board}
			}
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the report view
func (m *ReportModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("%s: %s -> %s", m.board.Name, m.from, m.to)))
	b.WriteString("\n")

	switch {
	case m.MessageErr:
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	case !m.ready:
		b.WriteString(styles.MutedText.Render("Loading report..."))
		b.WriteString("\n")
	default:
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpDesc.Render("j/k scroll · esc back · q quit"))
	return styles.App.Render(b.String())
}

// colorize tints the report's change lines by their leading marker.
func colorize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "+ "):
			lines[i] = styles.Added.Render(line)
		case strings.HasPrefix(trimmed, "~ "):
			lines[i] = styles.Modified.Render(line)
		case strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(line, "---"):
			lines[i] = styles.Removed.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// contentHeight leaves room for the title and help line around the viewport.
func contentHeight(total int) int {
	h := total - 6
	if h < 3 {
		h = 3
	}
	return h
}
