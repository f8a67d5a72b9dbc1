// Package ui provides the Bubble Tea terminal interface for the notes client.
//
// # Layout
//
//	┌ header: app name, backend URL, theme ─────────────────────┐
//	│ sidebar (note titles) │ main panel (detail or form)       │
//	└ footer: key hints or a short notice ──────────────────────┘
//
// The main panel shows, in order of priority: a spinner while a store call is
// outstanding, the last error, the create form, the edit form, and finally the
// selected note. In form modes an error is shown above the form so the draft
// is not lost.
//
// # Engine Integration
//
// The model owns a state.State and changes it only through dispatch, which
// calls state.Reduce and turns the returned Effect into a tea.Cmd running
// state.Perform. The result comes back as a message and is dispatched in
// turn, so store calls never block the update loop.
//
// While State.Loading is set, intents (open, new, edit, delete, save,
// cancel) are ignored. Navigation, scrolling, help, the theme toggle and
// copying stay available.
//
// # Package Structure
//
//   - app.go: Model, Update/View, dispatch and Run
//   - sidebar.go, detail.go: panel rendering
//   - form.go: title input and content textarea
//   - modal.go: delete confirmation
//   - markdown.go: cached glamour renderers for note content
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go: light and dark palettes
//   - clipboard.go: copy note content
//   - logs.go: client log overlay
//
// # Key Bindings
//
//	j/k, g/G   Move the sidebar cursor
//	enter      Open the note under the cursor
//	n, e, d    New, edit, delete (delete asks first)
//	y          Copy note content
//	ctrl+s     Save form
//	esc        Cancel form
//	tab        Switch form field
//	T          Toggle light/dark theme (saved to prefs)
//	L          Show the tail of the client log
//	?          Help
//	q          Quit
package ui
