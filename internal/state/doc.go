// Package state holds the search screen's state machine.
//
// # Overview
//
// A Session is a plain record with four transitions:
//
//	Idle ──Search()──→ Searching ──ok──→ Results
//	                        │
//	                        └──err──→ (previous state, Loading=false)
//	any  ──Clear()───→ Idle
//
// SetQuery only updates the pending text. Search is a no-op for an empty
// query. Failures are written to the standard logger, which app.Run points at
// the diagnostic log file, and are otherwise swallowed.
//
// # Split Search
//
// Bubble Tea must not block inside Update, so the UI drives the two halves
// separately:
//
//	query, ok := session.Begin()      // in Update, sets Loading
//	results, err := client.Search(ctx, query) // in a tea.Cmd
//	session.Finish(query, results, err)       // in Update, on the result msg
//
// Session.Search performs the same three steps synchronously.
//
// # Concurrency
//
// Session is not safe for concurrent use. Overlapping searches are not
// guarded against here: whichever Finish runs last wins. The UI refuses to
// start a search while Loading is set.
package state
