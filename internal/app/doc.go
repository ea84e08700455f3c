// Package app provides the orchestration layer for the roster application.
//
// # Overview
//
// This package wires together configuration, logging, the users client, the
// directory loader, the state store and the UI. It is the composition root
// where all dependencies are initialized and connected.
//
// # Startup
//
//  1. Load config from ~/.config/roster/config.toml (missing file means defaults)
//  2. Layer command-line overrides on top (endpoint, log file, level, format)
//  3. Open the log file; the TUI owns the terminal so logs never go to stderr
//  4. Load display preferences (theme); failures are logged and ignored
//  5. Build users.Client, directory.Loader and state.Store
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()         Read roster config
//	       ├─────> logging.New()         File-backed slog logger
//	       ├─────> users.NewClient()     HTTP client for the endpoint
//	       ├─────> directory.NewLoader() One-shot fetch
//	       ├─────> state.NewStore()      Single dispatch surface
//	       └─────> ui.Run()              Start TUI (blocks)
//
// # Teardown
//
// When ui.Run returns, Run closes the store and cancels the context. The
// cancellation aborts an in-flight request; the closed store drops any result
// that still arrives.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Endpoint URL invalid
//   - Log file cannot be opened
//
// Fetch failures are never fatal. They end up in the failed screen.
package app
