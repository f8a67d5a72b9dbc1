// Package app is the composition root of the notes client.
//
// # Startup
//
//  1. Load configuration (config.Load): backend URL, log file, log level, timeout
//  2. Open the zerolog file logger; the terminal belongs to the TUI
//  3. Build the notestore.Client with the configured timeout and logger
//  4. Either print the note list and exit (ListOnly), or load prefs and run ui.Run
//
// # Headless Listing
//
// PrintList drives the same engine the TUI uses through state.Machine: it
// dispatches Startup, which lists notes and selects the first one, then
// prints the result. It fails with the store's message when the list cannot
// be fetched.
//
// # Error Handling
//
// Configuration, logger and client setup errors are returned from Run. Store
// failures during the session are shown in the UI and logged, never returned.
// A signal that cancels ctx ends the TUI without an error.
package app
