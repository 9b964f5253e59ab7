// Package app provides the orchestration layer for Marquee.
//
// # Overview
//
// This package wires configuration, the diagnostic log, the MDBList client and
// the UI together. It is the composition root; business logic lives in the
// domain packages.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.LoadDotEnv()  .env → environment
//	       ├─────> config.Load()        TOML + MOVIE_API_KEY
//	       ├─────> tea.LogToFile()      std logger → diagnostic log
//	       ├─────> mdblist.NewClient()  HTTP client
//	       ├─────> prefs.Load()         theme, grid columns
//	       └─────> ui.Run()             TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Unreadable or invalid config/.env files
//   - Diagnostic log cannot be created
//   - Invalid api_url
//
// Search failures are not fatal. The state package logs them to the
// diagnostic log and the UI carries on.
//
// A missing MOVIE_API_KEY is logged and flagged in the header. Marquee still
// starts and the API rejects the requests.
package app
