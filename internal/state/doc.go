// Package state holds the view state of the notes client and the engine that
// keeps it consistent with the remote note store.
//
// # Overview
//
// The engine is a pure reducer. Every user intent and every store response is
// an Event; Reduce folds it into the State and returns at most one Effect,
// the next store call to make. Perform executes an Effect against a
// notestore.Store and turns the outcome back into an Event:
//
//	intent ──→ Reduce ──→ Effect ──→ Perform ──→ result Event
//	              ↑                                   │
//	              └───────────────────────────────────┘
//
// Reduce does no I/O, so transitions are tested without a server. Callers
// choose how effects run: the TUI wraps Perform in a Bubble Tea command, while
// Machine runs the loop synchronously for headless use and tests.
//
// # Operations
//
// Startup lists notes and selects the first one. Select fetches the full
// record. SaveNew and SaveEdit create or update, then re-list. Delete removes
// a note, re-lists and selects the first remaining one. BeginCreate,
// BeginEdit and Cancel switch the main panel without store calls.
//
// Drafts whose title and content are both blank never reach the store.
//
// # Stale Results
//
// Only one store operation is wanted at a time. State remembers it, and any
// result that does not match (a fetch for a note the user already moved away
// from, a list from an abandoned save) is dropped without changing anything.
//
// # Errors
//
// Failures set Err to the store's user-facing message and clear Loading.
// Notes, SelectedID and Mode keep their last good values so the user can
// retry. A failed fetch of the selected note always reads "Note not found.".
package state
