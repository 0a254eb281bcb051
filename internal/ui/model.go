package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/daylog/internal/journal"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	markerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model owns Bubble Tea state for the compose view over a single day.
type Model struct {
	ctx context.Context
	day *journal.Day

	lines []string
	input textinput.Model

	loading    bool
	busy       bool // a load or append is in flight
	statusLine string
	errorLine  string
}

type linesLoadedMsg struct {
	lines []string
}

type appendResultMsg struct {
	text    string
	written bool
	err     error
}

// NewModel seeds a Bubble Tea model on top of an open day file.
func NewModel(ctx context.Context, day *journal.Day) Model {
	input := textinput.New()
	input.Placeholder = "What happened?"
	input.Prompt = "> "
	input.Focus()

	return Model{
		ctx:        ctx,
		day:        day,
		input:      input,
		loading:    true,
		busy:       true,
		statusLine: "Loading today's entries...",
	}
}

// Init loads the existing entries and starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadLinesCmd(), textinput.Blink)
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case linesLoadedMsg:
		m.loading = false
		m.busy = false
		m.lines = msg.lines
		m.statusLine = fmt.Sprintf("%d entr%s", len(m.lines), plural(len(m.lines)))
		return m, nil
	case appendResultMsg:
		return m.handleAppendResult(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts an append. Loads and appends share one file handle, so a
// new command only starts once the previous one has reported back.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.errorLine = ""
		m.statusLine = "Nothing to record."
		return m, nil
	}
	m.input.Reset()
	m.busy = true
	return m, m.appendCmd(text)
}

func (m Model) handleAppendResult(msg appendResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.busy = false
		m.errorLine = msg.err.Error()
		m.input.SetValue(msg.text)
		return m, nil
	}
	m.errorLine = ""
	if !msg.written {
		m.busy = false
		m.statusLine = "Nothing to record."
		return m, nil
	}
	m.statusLine = "Recorded."
	return m, m.loadLinesCmd()
}

func (m Model) loadLinesCmd() tea.Cmd {
	day := m.day
	return func() tea.Msg {
		return linesLoadedMsg{lines: day.ReadAll()}
	}
}

func (m Model) appendCmd(text string) tea.Cmd {
	ctx := m.ctx
	day := m.day
	return func() tea.Msg {
		written, err := day.Append(ctx, text)
		return appendResultMsg{text: text, written: written, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.day.Date().Format("Monday, 02 January 2006")
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.lines) == 0 {
		b.WriteString("(no entries)\n")
	} else {
		for _, line := range m.lines {
			b.WriteString(markerStyle.Render("-"))
			b.WriteByte(' ')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter record  esc quit"))
	b.WriteByte('\n')

	return b.String()
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
