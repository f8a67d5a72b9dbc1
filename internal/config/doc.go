// Package config loads the notes client configuration.
//
// # Resolution Order
//
// Settings are layered, later sources winning:
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/notes/config.toml)
//  3. Variables from a .env file in the working directory
//  4. NOTES_BACKEND_URL, NOTES_LOG_FILE and NOTES_LOG_LEVEL from the environment
//
// A .env file never overrides a variable already present in the environment.
// A missing config file or .env file is not an error.
//
// # Default Values
//
//   - Backend URL: http://localhost:5000
//   - Log file: ~/.local/state/notes/notes.log
//   - Log level: info
//   - Request timeout: 10s
//
// # TOML Format
//
//	backend_url = "http://notes.lan:5000/api"
//	log_file = "~/.cache/notes.log"
//	log_level = "debug"
//	request_timeout = "5s"
//
// All keys are optional. request_timeout takes a Go duration string; "0s"
// disables the timeout. Tilde expansion is applied to paths.
//
// # Error Handling
//
// Load returns errors for unreadable files, TOML syntax errors, malformed
// durations and .env files that exist but cannot be parsed.
package config
