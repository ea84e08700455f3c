// Package config loads roster's TOML configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	endpoint   = "https://jsonplaceholder.typicode.com/users"
//	timeout    = "10s"
//	log_file   = "~/.local/state/roster/roster.log"
//	log_level  = "info"   # debug, info, warn, error, off
//	log_format = "text"   # text or json
//
// Every field is optional. Tilde expansion is applied to log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and invalid or non-positive timeouts.
// A missing config file is not an error.
package config
