package state

import (
	"slices"

	"github.com/five82/notes/internal/notestore"
)

// Reduce applies ev to s and returns the next state together with the store
// call to perform next, or nil when nothing is outstanding. It does no I/O.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case Startup:
		s.Loading = true
		s.Err = ""
		s.pending = pending{kind: opStartup, listing: true}
		return s, ListRequest{}

	case Select:
		return selectNote(s, ev.ID, false)

	case BeginCreate:
		s.Current = &notestore.Note{}
		s.Mode = ModeCreate
		return s, nil

	case BeginEdit:
		if s.Current == nil || s.Current.ID == "" {
			return s, nil
		}
		s.Mode = ModeEdit
		return s, nil

	case SaveNew:
		if ev.Draft.Blank() {
			return s, nil
		}
		s = begin(s, pending{kind: opCreate})
		return s, CreateRequest{Draft: ev.Draft}

	case SaveEdit:
		if ev.Draft.Blank() || s.SelectedID == "" {
			return s, nil
		}
		s = begin(s, pending{kind: opEdit, id: s.SelectedID})
		return s, UpdateRequest{ID: s.SelectedID, Draft: ev.Draft}

	case Cancel:
		if s.Mode == ModeDetail {
			return s, nil
		}
		s.Mode = ModeDetail
		s.Current = s.loaded
		return s, nil

	case Delete:
		if ev.ID == "" {
			return s, nil
		}
		s = begin(s, pending{kind: opDelete, id: ev.ID})
		return s, DeleteRequest{ID: ev.ID}

	case Listed:
		return listed(s, ev)

	case Fetched:
		return fetched(s, ev)

	case Created:
		if s.pending.kind != opCreate || s.pending.listing {
			return s, nil
		}
		if ev.Err != nil {
			return fail(s, ev.Err), nil
		}
		note := ev.Note
		s.pending.note = &note
		s.pending.listing = true
		return s, ListRequest{}

	case Updated:
		if s.pending.kind != opEdit || s.pending.listing || ev.ID != s.pending.id {
			return s, nil
		}
		if ev.Err != nil {
			return fail(s, ev.Err), nil
		}
		note := ev.Note
		if note.ID == "" {
			note.ID = ev.ID
		}
		s.pending.note = &note
		s.pending.listing = true
		return s, ListRequest{}

	case Deleted:
		if s.pending.kind != opDelete || s.pending.listing || ev.ID != s.pending.id {
			return s, nil
		}
		if ev.Err != nil {
			return fail(s, ev.Err), nil
		}
		s.pending.listing = true
		return s, ListRequest{}
	}
	return s, nil
}

// selectNote runs the select flow. force re-fetches even when id is already
// selected.
func selectNote(s State, id string, force bool) (State, Effect) {
	if id == "" {
		s.SelectedID = ""
		s.Current = nil
		s.loaded = nil
		s.Mode = ModeDetail
		return s, nil
	}
	if id == s.SelectedID && !force {
		return s, nil
	}
	s.SelectedID = id
	s.Current = nil
	s.loaded = nil
	s.Mode = ModeDetail
	s = begin(s, pending{kind: opSelect, id: id})
	return s, GetRequest{ID: id}
}

func listed(s State, ev Listed) (State, Effect) {
	p := s.pending
	if !p.listing {
		return s, nil
	}
	if ev.Err != nil {
		return fail(s, ev.Err), nil
	}

	s.Notes = slices.Clone(ev.Notes)
	if s.Notes == nil {
		s.Notes = []notestore.Summary{}
	}
	s.Loading = false
	s.pending = pending{}

	switch p.kind {
	case opStartup:
		if len(s.Notes) > 0 && s.SelectedID == "" {
			return selectNote(s, s.Notes[0].ID, false)
		}
	case opCreate:
		s.SelectedID = p.note.ID
		s.Mode = ModeDetail
		s.Current = p.note
		s.loaded = p.note
	case opEdit:
		s.Mode = ModeDetail
		if s.SelectedID == p.id {
			s.Current = p.note
			s.loaded = p.note
		}
	case opDelete:
		s.Mode = ModeDetail
		s.Current = s.loaded
		if len(s.Notes) == 0 {
			return selectNote(s, "", false)
		}
		// The deleted note may linger in a lagging list; fetch anyway so the
		// panel reflects what the store now says.
		return selectNote(s, s.Notes[0].ID, s.SelectedID == p.id)
	}
	return s, nil
}

func fetched(s State, ev Fetched) (State, Effect) {
	if s.pending.kind != opSelect || ev.ID != s.pending.id || ev.ID != s.SelectedID {
		return s, nil
	}
	s.pending = pending{}
	s.Loading = false
	if ev.Err != nil {
		s.Err = NotFoundMessage
		s.loaded = nil
		if s.Mode == ModeDetail {
			s.Current = nil
		}
		return s, nil
	}
	note := ev.Note
	if note.ID == "" {
		note.ID = ev.ID
	}
	s.Err = ""
	s.loaded = &note
	if s.Mode == ModeDetail {
		s.Current = &note
	}
	return s, nil
}

func begin(s State, p pending) State {
	s.Loading = true
	s.Err = ""
	s.pending = p
	return s
}

// fail records err and leaves the last known good data in place.
func fail(s State, err error) State {
	s.Err = notestore.Message(err)
	s.Loading = false
	s.pending = pending{}
	return s
}
