package ui

import (
	"fmt"
)

// renderHeader renders the top bar: logo, search status and config warnings.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("marquee", styles.Logo),
		m.statusText(styles, bg),
	}
	if m.apiKeyMissing {
		parts = append(parts, bg.Render("MOVIE_API_KEY not set", styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, 2))
}

// statusText describes the session: searching, showing results, or idle.
func (m Model) statusText(styles Styles, bg BgStyle) string {
	switch {
	case m.session.Loading:
		return bg.Render(m.spinner.View(), styles.AccentText) + bg.Spaces(1) +
			bg.Render(fmt.Sprintf("Searching for %q", truncate(m.pendingQuery, 40)), styles.MutedText)
	case m.session.Visible:
		return bg.Render(resultCountLabel(len(m.session.Results)), styles.Text) + bg.Spaces(1) +
			bg.Render(fmt.Sprintf("for %q", truncate(m.lastQuery, 40)), styles.MutedText)
	default:
		return bg.Render("Search your movie here", styles.MutedText)
	}
}

func resultCountLabel(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// renderFooter renders the short key help and the theme name.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	m.help.Width = maxInt(m.width-20, 10)
	left := m.help.ShortHelpView(m.keys.ShortHelp())
	right := bg.Render(m.theme.Name, styles.FaintText)

	return styles.Footer.Width(m.width).Render(bg.Join([]string{left, right}, 3))
}
