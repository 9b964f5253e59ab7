package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/logtail"
)

// diagnosticsState backs the diagnostic log overlay. It is the only place
// search failures can be seen.
type diagnosticsState struct {
	viewport viewport.Model
	lines    []string
	err      error
	loaded   bool
}

type diagnosticsMsg struct {
	lines []string
	err   error
}

func readDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return diagnosticsMsg{}
		}
		lines, err := logtail.Read(path, diagnosticLines)
		return diagnosticsMsg{lines: lines, err: err}
	}
}

func (m *Model) resizeDiagnostics() {
	// border (2) + padding (2) + title and rule (2)
	m.diagnostics.viewport.Width = maxInt(m.width-8, 10)
	m.diagnostics.viewport.Height = maxInt(m.height-8, 3)
	m.renderDiagnosticsContent()
}

func (m *Model) handleDiagnostics(msg diagnosticsMsg) {
	m.diagnostics.lines = msg.lines
	m.diagnostics.err = msg.err
	m.diagnostics.loaded = true
	m.renderDiagnosticsContent()
	m.diagnostics.viewport.GotoBottom()
}

func (m *Model) renderDiagnosticsContent() {
	styles := m.theme.Styles()
	d := &m.diagnostics

	switch {
	case !d.loaded:
		d.viewport.SetContent(styles.MutedText.Render("Loading..."))
	case d.err != nil:
		d.viewport.SetContent(styles.DangerText.Render(d.err.Error()))
	case len(d.lines) == 0:
		d.viewport.SetContent(styles.MutedText.Render("No diagnostics recorded."))
	default:
		width := d.viewport.Width
		out := make([]string, len(d.lines))
		for i, line := range d.lines {
			style := styles.Text
			if logtail.Classify(line) == logtail.SeverityError {
				style = styles.DangerText
			}
			out[i] = style.Render(truncate(line, width))
		}
		d.viewport.SetContent(strings.Join(out, "\n"))
	}
}

// handleDiagnosticsKey scrolls the overlay; esc, q or the toggle key close it.
func (m Model) handleDiagnosticsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape, m.keys.Diagnostics) || msg.String() == "q" {
		m.showDiagnostics = false
		m.diagnostics.loaded = false
		return m, nil
	}
	var cmd tea.Cmd
	m.diagnostics.viewport, cmd = m.diagnostics.viewport.Update(msg)
	return m, cmd
}

// renderDiagnostics renders the diagnostic log overlay.
func (m Model) renderDiagnostics() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Diagnostic log"))
	if m.logPath != "" {
		b.WriteString(styles.FaintText.Render("  " + truncate(m.logPath, maxInt(m.width-30, 10))))
	}
	b.WriteString("\n")
	b.WriteString(m.diagnostics.viewport.View())

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(0, 1)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
	)
}
