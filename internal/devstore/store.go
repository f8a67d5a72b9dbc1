package devstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned for unknown note ids.
var ErrNotFound = errors.New("note not found")

// Note is the server-side record.
type Note struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Summary is the list projection of a Note.
type Summary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// Store is an in-memory note collection guarded by a mutex.
type Store struct {
	mu    sync.RWMutex
	notes map[string]Note
	now   func() time.Time
	newID func() string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		notes: make(map[string]Note),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// List returns summaries, most recently updated first.
func (s *Store) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Summary, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, Summary{ID: n.ID, Title: n.Title, Timestamp: n.Timestamp})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return n, nil
}

// Create stores a new note with a fresh id and timestamp.
func (s *Store) Create(title, content string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:        s.newID(),
		Title:     normalizeTitle(title),
		Content:   content,
		Timestamp: s.now().UTC(),
	}
	s.notes[n.ID] = n
	return n
}

// Update replaces title and content and refreshes the timestamp.
func (s *Store) Update(id, title, content string) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	n.Title = normalizeTitle(title)
	n.Content = content
	n.Timestamp = s.now().UTC()
	s.notes[id] = n
	return n, nil
}

// Delete removes a note.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return ErrNotFound
	}
	delete(s.notes, id)
	return nil
}

// Len returns the number of stored notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

type snapshot struct {
	Notes []Note `yaml:"notes"`
}

// LoadFile seeds the store from a YAML snapshot. A missing file is not an error.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read seed: %w", err)
	}
	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parse seed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range snap.Notes {
		if strings.TrimSpace(n.ID) == "" {
			n.ID = s.newID()
		}
		if n.Timestamp.IsZero() {
			n.Timestamp = s.now().UTC()
		}
		n.Title = normalizeTitle(n.Title)
		s.notes[n.ID] = n
	}
	return nil
}

// SaveFile writes the store to a YAML snapshot, creating directories as needed.
func (s *Store) SaveFile(path string) error {
	s.mu.RLock()
	snap := snapshot{Notes: make([]Note, 0, len(s.notes))}
	for _, n := range s.notes {
		snap.Notes = append(snap.Notes, n)
	}
	s.mu.RUnlock()

	sort.Slice(snap.Notes, func(i, j int) bool { return snap.Notes[i].ID < snap.Notes[j].ID })

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// normalizeTitle trims surrounding whitespace and collapses internal runs.
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}
