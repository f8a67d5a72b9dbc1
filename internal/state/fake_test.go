package state

import (
	"context"
	"fmt"

	"github.com/five82/notes/internal/notestore"
)

// fakeStore is an in-memory notestore.Store with per-operation failure hooks.
type fakeStore struct {
	order []string
	notes map[string]notestore.Note
	next  int

	failList   error
	failGet    error
	failCreate error
	failUpdate error
	failDelete error

	calls map[notestore.Op]int
}

func newFakeStore(notes ...notestore.Note) *fakeStore {
	f := &fakeStore{notes: make(map[string]notestore.Note), calls: make(map[notestore.Op]int)}
	for _, n := range notes {
		f.order = append(f.order, n.ID)
		f.notes[n.ID] = n
	}
	return f
}

func (f *fakeStore) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeStore) List(context.Context) ([]notestore.Summary, error) {
	f.calls[notestore.OpList]++
	if f.failList != nil {
		return nil, f.failList
	}
	out := make([]notestore.Summary, 0, len(f.order))
	for _, id := range f.order {
		n := f.notes[id]
		out = append(out, notestore.Summary{ID: n.ID, Title: n.Title, Timestamp: n.Timestamp})
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (notestore.Note, error) {
	f.calls[notestore.OpGet]++
	if f.failGet != nil {
		return notestore.Note{}, f.failGet
	}
	n, ok := f.notes[id]
	if !ok {
		return notestore.Note{}, &notestore.Error{Op: notestore.OpGet, ID: id, Status: 404, Err: notestore.ErrNotFound}
	}
	return n, nil
}

func (f *fakeStore) Create(_ context.Context, d notestore.Draft) (notestore.Note, error) {
	f.calls[notestore.OpCreate]++
	if f.failCreate != nil {
		return notestore.Note{}, f.failCreate
	}
	f.next++
	n := notestore.Note{ID: fmt.Sprintf("srv-%d", f.next), Title: d.Title, Content: d.Content, Timestamp: "2025-01-01T00:00:00Z"}
	// Newest first, as a server might order it.
	f.order = append([]string{n.ID}, f.order...)
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeStore) Update(_ context.Context, id string, d notestore.Draft) (notestore.Note, error) {
	f.calls[notestore.OpUpdate]++
	if f.failUpdate != nil {
		return notestore.Note{}, f.failUpdate
	}
	n, ok := f.notes[id]
	if !ok {
		return notestore.Note{}, &notestore.Error{Op: notestore.OpUpdate, ID: id, Status: 404, Err: notestore.ErrNotFound}
	}
	n.Title, n.Content, n.Timestamp = d.Title, d.Content, "2025-01-02T00:00:00Z"
	f.notes[id] = n
	return n, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.calls[notestore.OpDelete]++
	if f.failDelete != nil {
		return f.failDelete
	}
	if _, ok := f.notes[id]; !ok {
		return &notestore.Error{Op: notestore.OpDelete, ID: id, Status: 404, Err: notestore.ErrNotFound}
	}
	delete(f.notes, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func storeErr(op notestore.Op) error {
	return &notestore.Error{Op: op, Status: 500, Err: fmt.Errorf("api returned status 500")}
}

func noteA() notestore.Note { return notestore.Note{ID: "a", Title: "Alpha", Content: "first"} }
func noteB() notestore.Note { return notestore.Note{ID: "b", Title: "Beta", Content: "second"} }
