package state

import "github.com/five82/notes/internal/notestore"

// Event is either a user intent or the result of an Effect.
type Event interface {
	event()
}

// Intents.
type (
	// Startup loads the note list.
	Startup struct{}
	// Select shows a note; an empty ID clears the selection.
	Select struct{ ID string }
	// BeginCreate opens a blank create form.
	BeginCreate struct{}
	// BeginEdit opens the edit form for the current note.
	BeginEdit struct{}
	// SaveNew creates a note from the draft.
	SaveNew struct{ Draft notestore.Draft }
	// SaveEdit updates the selected note from the draft.
	SaveEdit struct{ Draft notestore.Draft }
	// Cancel leaves the create or edit form.
	Cancel struct{}
	// Delete removes a note. Callers confirm with the user first.
	Delete struct{ ID string }
)

// Results.
type (
	Listed struct {
		Notes []notestore.Summary
		Err   error
	}
	Fetched struct {
		ID   string
		Note notestore.Note
		Err  error
	}
	Created struct {
		Note notestore.Note
		Err  error
	}
	Updated struct {
		ID   string
		Note notestore.Note
		Err  error
	}
	Deleted struct {
		ID  string
		Err error
	}
)

func (Startup) event()     {}
func (Select) event()      {}
func (BeginCreate) event() {}
func (BeginEdit) event()   {}
func (SaveNew) event()     {}
func (SaveEdit) event()    {}
func (Cancel) event()      {}
func (Delete) event()      {}
func (Listed) event()      {}
func (Fetched) event()     {}
func (Created) event()     {}
func (Updated) event()     {}
func (Deleted) event()     {}
