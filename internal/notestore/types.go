package notestore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Summary is a sidebar row as returned by GET /notes.
type Summary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ParsedTimestamp returns the timestamp as time.Time when possible.
func (s Summary) ParsedTimestamp() time.Time {
	return parseTime(s.Timestamp)
}

// UnmarshalJSON accepts numeric or string ids.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        flexID `json:"id"`
		Title     string `json:"title"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Summary{ID: string(raw.ID), Title: raw.Title, Timestamp: raw.Timestamp}
	return nil
}

// Note is the full record served by GET /notes/{id} and returned from saves.
type Note struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ParsedTimestamp returns the timestamp as time.Time when possible.
func (n Note) ParsedTimestamp() time.Time {
	return parseTime(n.Timestamp)
}

// Draft returns the editable part of the note.
func (n Note) Draft() Draft {
	return Draft{Title: n.Title, Content: n.Content}
}

// UnmarshalJSON accepts numeric or string ids.
func (n *Note) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        flexID `json:"id"`
		Title     string `json:"title"`
		Content   string `json:"content"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Note{ID: string(raw.ID), Title: raw.Title, Content: raw.Content, Timestamp: raw.Timestamp}
	return nil
}

// Draft is the body of create and update requests.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Blank reports whether both fields are empty or whitespace-only.
func (d Draft) Blank() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// flexID decodes a JSON string or number into its string form.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be string or number: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
