// Package ui provides the Bubble Tea TUI for Marquee.
//
// The screen is a header, a search row and a grid of result cards. The
// search row holds a text input, a Search button that turns into a spinner
// while a request is in flight, and a Clear button that appears once
// results are shown.
//
// # Package Structure
//
//   - app.go: Model, Update/View and the Run entry point
//   - search.go: search commands and the search row
//   - grid.go: card layout, selection and scrolling
//   - header.go: header status line and footer
//   - help.go: keyboard shortcut overlay
//   - diagnostics.go: diagnostic log overlay
//   - theme.go: color themes and derived lipgloss styles
//   - keys.go: key bindings
//
// Search state lives in internal/state; the UI only mirrors the text input
// into it and renders what it holds. Failed searches are logged and leave
// the screen unchanged.
package ui
