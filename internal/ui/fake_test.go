package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/notes/internal/notestore"
)

type fakeStore struct {
	mu       sync.Mutex
	order    []string
	notes    map[string]notestore.Note
	next     int
	failList bool
	calls    map[notestore.Op]int
}

func newFakeStore(notes ...notestore.Note) *fakeStore {
	f := &fakeStore{notes: map[string]notestore.Note{}, calls: map[notestore.Op]int{}}
	for _, n := range notes {
		f.order = append(f.order, n.ID)
		f.notes[n.ID] = n
	}
	return f
}

func (f *fakeStore) count(op notestore.Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeStore) List(context.Context) ([]notestore.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[notestore.OpList]++
	if f.failList {
		return nil, &notestore.Error{Op: notestore.OpList, Err: errors.New("boom")}
	}
	out := make([]notestore.Summary, 0, len(f.order))
	for _, id := range f.order {
		n := f.notes[id]
		out = append(out, notestore.Summary{ID: n.ID, Title: n.Title, Timestamp: n.Timestamp})
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (notestore.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[notestore.OpGet]++
	n, ok := f.notes[id]
	if !ok {
		return notestore.Note{}, &notestore.Error{Op: notestore.OpGet, ID: id, Status: 404, Err: notestore.ErrNotFound}
	}
	return n, nil
}

func (f *fakeStore) Create(_ context.Context, d notestore.Draft) (notestore.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[notestore.OpCreate]++
	f.next++
	n := notestore.Note{ID: fmt.Sprintf("new-%d", f.next), Title: d.Title, Content: d.Content}
	f.order = append([]string{n.ID}, f.order...)
	f.notes[n.ID] = n
	return n, nil
}

func (f *fakeStore) Update(_ context.Context, id string, d notestore.Draft) (notestore.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[notestore.OpUpdate]++
	if _, ok := f.notes[id]; !ok {
		return notestore.Note{}, &notestore.Error{Op: notestore.OpUpdate, ID: id, Status: 404, Err: notestore.ErrNotFound}
	}
	n := notestore.Note{ID: id, Title: d.Title, Content: d.Content}
	f.notes[id] = n
	return n, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[notestore.OpDelete]++
	delete(f.notes, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func noteA() notestore.Note {
	return notestore.Note{ID: "a", Title: "Alpha", Content: "first body", Timestamp: "2025-03-01T10:00:00Z"}
}

func noteB() notestore.Note {
	return notestore.Note{ID: "b", Title: "Beta", Content: ""}
}

// newTestModel builds a sized model and runs startup to completion.
func newTestModel(t *testing.T, store *fakeStore) Model {
	t.Helper()
	m := New(Options{Store: store, PrefsPath: t.TempDir() + "/prefs.toml"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	return pump(t, m, m.Init())
}

// pump runs cmd and feeds back the messages that carry engine traffic.
// Timer-driven commands (cursor blink, spinner, notices) are abandoned.
func pump(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatalf("pump did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg, ok := runCmd(c)
		if !ok {
			continue
		}
		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case resultMsg, intentMsg, copiedMsg:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		}
	}
	return m
}

func runCmd(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(100 * time.Millisecond):
		return nil, false
	}
}

// press sends one key and pumps whatever it triggers.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	return pump(t, next.(Model), cmd)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}
