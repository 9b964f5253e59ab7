package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/mdblist"
)

const heart = "♥"

// resize fits the grid viewport to the terminal and re-renders it.
func (m *Model) resize() {
	m.grid.Width = m.width
	m.grid.Height = maxInt(m.height-chromeLines, 1)
	m.resizeDiagnostics()
	m.refreshGrid()
}

// gridColumns picks 1 to 3 columns from the available width, capped by the
// user's max_columns preference when set.
func gridColumns(width, maxColumns int) int {
	cols := (width + cardGap) / (cardMinWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	if cols > maxGridColumns {
		cols = maxGridColumns
	}
	if maxColumns > 0 && cols > maxColumns {
		cols = maxColumns
	}
	return cols
}

// cardWidth returns the outer width of one card for the given layout.
func cardWidth(width, cols int) int {
	if cols < 1 {
		cols = 1
	}
	w := (width - cardGap*(cols-1)) / cols
	return maxInt(w, 8)
}

// refreshGrid rebuilds the viewport content from the session.
func (m *Model) refreshGrid() {
	if !m.ready {
		return
	}
	if !m.session.Visible {
		m.grid.SetContent("")
		return
	}
	if len(m.session.Results) == 0 {
		styles := m.theme.Styles()
		msg := styles.MutedText.Render(fmt.Sprintf("No matches for %q.", m.lastQuery))
		m.grid.SetContent(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg))
		return
	}
	if m.selected >= len(m.session.Results) {
		m.selected = len(m.session.Results) - 1
	}
	m.grid.SetContent(m.renderGrid())
	m.ensureSelectedVisible()
}

// renderGrid lays the cards out in rows.
func (m Model) renderGrid() string {
	cols := gridColumns(m.width, m.maxColumns)
	width := cardWidth(m.width, cols)
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	results := m.session.Results
	for start := 0; start < len(results); start += cols {
		end := minInt(start+cols, len(results))
		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}
			focused := m.focus == focusGrid && i == m.selected
			cards = append(cards, m.renderCard(results[i], width, focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCard renders one result: type label, title, year and score.
func (m Model) renderCard(r mdblist.Result, width int, focused bool) string {
	base := m.theme.Styles()
	box := base.Card
	bg := m.theme.CardBg
	if focused {
		box = base.CardFocused
		bg = m.theme.FocusBg
	}
	styles := base.WithBackground(bg)

	// border (2) + horizontal padding (4)
	inner := maxInt(width-6, 1)

	lines := []string{
		styles.CardType.Render(truncate(r.DisplayType(), inner)),
		"",
		styles.CardTitle.Render(truncate(r.Title, inner)),
		"",
		styles.CardYear.Render(r.DisplayYear()),
		styles.CardScore.Render(heart) + styles.CardYear.Render(" "+r.DisplayScore()),
	}
	return box.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// ensureSelectedVisible scrolls the viewport so the selected card's row is
// fully on screen.
func (m *Model) ensureSelectedVisible() {
	cols := gridColumns(m.width, m.maxColumns)
	top := (m.selected / cols) * cardHeight
	bottom := top + cardHeight
	switch {
	case top < m.grid.YOffset:
		m.grid.SetYOffset(top)
	case bottom > m.grid.YOffset+m.grid.Height:
		m.grid.SetYOffset(bottom - m.grid.Height)
	}
}

// handleGridKey moves the selection while the grid has focus.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.session.Results)
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = true
		return m, nil
	}
	if count == 0 {
		return m, nil
	}
	cols := gridColumns(m.width, m.maxColumns)
	perPage := maxInt(m.grid.Height/cardHeight, 1) * cols

	switch {
	case key.Matches(msg, m.keys.Left):
		m.selected--
	case key.Matches(msg, m.keys.Right):
		m.selected++
	case key.Matches(msg, m.keys.Up):
		m.selected -= cols
	case key.Matches(msg, m.keys.Down):
		m.selected += cols
	case key.Matches(msg, m.keys.PageUp):
		m.selected -= perPage
	case key.Matches(msg, m.keys.PageDown):
		m.selected += perPage
	case key.Matches(msg, m.keys.Top):
		m.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		m.selected = count - 1
	default:
		return m, nil
	}
	m.selected = clamp(m.selected, 0, count-1)
	m.refreshGrid()
	return m, nil
}
