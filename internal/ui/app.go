package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/mdblist"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// focusArea says which part of the screen receives navigation keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusGrid
)

// Options configures the UI.
type Options struct {
	Context       context.Context
	Searcher      mdblist.Searcher
	ThemeName     string
	MaxColumns    int    // 0 picks columns from terminal width
	PrefsPath     string // empty uses prefs.DefaultPath()
	LogPath       string // diagnostic log shown by the diagnostics overlay
	InitialQuery  string // searched once on startup when non-empty
	APIKeyMissing bool
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx           context.Context
	searcher      mdblist.Searcher
	prefsPath     string
	logPath       string
	maxColumns    int
	initialQuery  string
	apiKeyMissing bool

	// UI state
	keys   keyMap
	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	// Search state
	session      state.Session
	pendingQuery string // query of the request in flight
	lastQuery    string // query of the last successful search
	input     textinput.Model
	spinner   spinner.Model

	// Results grid
	grid     viewport.Model
	selected int

	// Overlays
	help            help.Model
	showHelp        bool
	showDiagnostics bool
	diagnostics     diagnosticsState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:           ctx,
		searcher:      opts.Searcher,
		prefsPath:     prefsPath,
		logPath:       opts.LogPath,
		maxColumns:    opts.MaxColumns,
		initialQuery:  opts.InitialQuery,
		apiKeyMissing: opts.APIKeyMissing,
		keys:          DefaultKeyMap(),
		theme:         GetTheme(themeName),
		focus:         focusInput,
		input:         newSearchInput(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.Dot)),
		grid:          viewport.New(0, 0),
		help:          help.New(),
		diagnostics:   diagnosticsState{viewport: viewport.New(0, 0)},
	}
	m.applyTheme()

	if opts.InitialQuery != "" {
		m.input.SetValue(opts.InitialQuery)
		m.session.SetQuery(opts.InitialQuery)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		textinput.Blink,
	}
	if m.initialQuery != "" {
		cmds = append(cmds, func() tea.Msg { return autoSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case autoSearchMsg:
		return m.startSearch()

	case searchResultMsg:
		m.finishSearch(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.session.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case diagnosticsMsg:
		m.handleDiagnostics(msg)
		return m, nil
	}

	// Cursor blink and other input internals.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showDiagnostics {
		return m.renderDiagnostics()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showDiagnostics {
		return m.handleDiagnosticsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		return m.startSearch()

	case key.Matches(msg, m.keys.Clear):
		m.clear()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.session.Visible || m.session.Query != "" {
			m.clear()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		return m, m.toggleFocus()

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		m.showDiagnostics = true
		return m, readDiagnosticsCmd(m.logPath)

	case key.Matches(msg, m.keys.HelpGlobal):
		m.showHelp = true
		return m, nil
	}

	if m.focus == focusGrid {
		return m.handleGridKey(msg)
	}
	return m.handleInputKey(msg)
}

// handleInputKey feeds keystrokes to the text input and mirrors its value
// into the session.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.Query {
		m.session.SetQuery(m.input.Value())
	}
	return m, cmd
}

// toggleFocus moves focus between the search input and the results grid.
// The grid only takes focus while it has cards to show.
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		if !m.session.Visible || len(m.session.Results) == 0 {
			return nil
		}
		m.focus = focusGrid
		m.input.Blur()
		m.refreshGrid()
		return nil
	}
	m.focus = focusInput
	m.refreshGrid()
	return m.input.Focus()
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, MaxColumns: m.maxColumns}); err != nil {
			log.Printf("save prefs: %v", err)
		}
	}
	m.refreshGrid()
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.spinner.Style = styles.AccentText
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
}

// renderMain renders the search screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderSearchRow())
	b.WriteString("\n\n")

	if m.session.Visible {
		b.WriteString(m.grid.View())
	} else {
		b.WriteString(strings.Repeat("\n", maxInt(m.grid.Height-1, 0)))
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Cancelled by SIGINT/SIGTERM; not a failure.
		return nil
	}
	return err
}
