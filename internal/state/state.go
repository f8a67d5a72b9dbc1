package state

import (
	"github.com/five82/notes/internal/notestore"
)

// Mode is what the main panel shows.
type Mode int

const (
	ModeDetail Mode = iota
	ModeEdit
	ModeCreate
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeCreate:
		return "create"
	default:
		return "detail"
	}
}

// NotFoundMessage is shown when the selected note cannot be loaded.
const NotFoundMessage = "Note not found."

// State is the view state the presentation renders. Only Reduce changes it.
type State struct {
	// Notes matches the most recent successful list fetch, in server order.
	Notes []notestore.Summary
	// SelectedID is empty when nothing is selected.
	SelectedID string
	Mode       Mode
	// Current is the loaded record for SelectedID, or the blank record
	// backing the create form.
	Current *notestore.Note
	Loading bool
	Err     string

	loaded  *notestore.Note
	pending pending
}

type opKind int

const (
	opNone opKind = iota
	opStartup
	opSelect
	opCreate
	opEdit
	opDelete
)

// pending tracks the one operation whose results are still wanted. Results
// that do not match it are stale and dropped.
type pending struct {
	kind    opKind
	id      string
	listing bool
	note    *notestore.Note
}

// New returns the startup state: detail mode, waiting for the first list.
func New() State {
	return State{Mode: ModeDetail, Loading: true}
}

// HasSelection reports whether a note is selected.
func (s State) HasSelection() bool {
	return s.SelectedID != ""
}

// SelectedIndex returns the position of the selection in Notes, or -1.
func (s State) SelectedIndex() int {
	if s.SelectedID == "" {
		return -1
	}
	for i, n := range s.Notes {
		if n.ID == s.SelectedID {
			return i
		}
	}
	return -1
}

// Busy reports whether a store round trip is outstanding.
func (s State) Busy() bool {
	return s.pending.kind != opNone
}
