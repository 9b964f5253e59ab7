package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/mdblist"
)

// Messages

type autoSearchMsg struct{}

type searchResultMsg struct {
	query   string
	results []mdblist.Result
	err     error
}

// Commands

func searchCmd(ctx context.Context, searcher mdblist.Searcher, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := searcher.Search(ctx, query)
		return searchResultMsg{query: query, results: results, err: err}
	}
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a movie..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()
	return ti
}

// startSearch issues the request for the pending query. While a request is in
// flight the trigger is ignored, like a disabled button.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	if m.session.Loading || m.searcher == nil {
		return m, nil
	}
	query, ok := m.session.Begin()
	if !ok {
		return m, nil
	}
	m.pendingQuery = query
	return m, tea.Batch(m.spinner.Tick, searchCmd(m.ctx, m.searcher, query))
}

// finishSearch applies a completed request to the session. Errors are logged
// by the session and never shown here.
func (m *Model) finishSearch(msg searchResultMsg) {
	m.session.Finish(msg.query, msg.results, msg.err)
	m.pendingQuery = ""
	if msg.err == nil {
		m.lastQuery = msg.query
		m.selected = 0
		m.grid.GotoTop()
	}
	m.refreshGrid()
}

// clear resets the session, the input and the grid.
func (m *Model) clear() {
	m.session.Clear()
	m.input.SetValue("")
	m.lastQuery = ""
	m.selected = 0
	m.grid.GotoTop()
	if m.focus == focusGrid {
		m.focus = focusInput
		m.input.Focus()
	}
	m.refreshGrid()
}

// renderSearchRow renders the input box, the search button and, while results
// are shown, the clear button.
func (m Model) renderSearchRow() string {
	styles := m.theme.Styles()

	boxStyle := styles.Input
	if m.focus == focusInput {
		boxStyle = styles.InputFocused
	}
	m.input.Width = m.inputWidth()
	box := boxStyle.Render(m.input.View())

	var button string
	if m.session.Loading {
		button = styles.ButtonDisabled.Render(m.spinner.View() + " Searching...")
	} else {
		button = styles.Button.Render("Search")
	}

	parts := []string{box, " ", button}
	if m.session.Visible {
		parts = append(parts, " ", styles.ClearButton.Render("Clear"))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
}

// inputWidth sizes the text field so the whole row fits the terminal.
func (m Model) inputWidth() int {
	// border + padding + prompt, plus room for both buttons
	w := m.width - searchRowChrome
	if w > maxInputWidth {
		w = maxInputWidth
	}
	if w < minInputWidth {
		w = minInputWidth
	}
	return w
}
