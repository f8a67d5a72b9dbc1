package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse_ZerologLine(t *testing.T) {
	line := `{"level":"warn","component":"notestore","op":"get","id":"7","time":"2025-03-01T10:00:00Z","message":"store call failed"}`
	e := Parse(line)
	if e.Level != "warn" || e.Message != "store call failed" {
		t.Fatalf("Parse = %#v", e)
	}
	if e.Fields["op"] != "get" || e.Fields["id"] != "7" {
		t.Fatalf("Fields = %v", e.Fields)
	}
	if _, ok := e.Fields["time"]; ok {
		t.Fatalf("time kept as a field")
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !e.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", e.Time, want)
	}
}

func TestParse_NonJSONKeptRaw(t *testing.T) {
	e := Parse("panic: something")
	if e.Raw != "panic: something" || e.Format() != "panic: something" {
		t.Fatalf("Parse = %#v", e)
	}
}

func TestEntry_FormatSortsFields(t *testing.T) {
	e := Entry{Level: "debug", Message: "store call", Fields: map[string]string{"op": "list", "elapsed": "3"}}
	if got, want := e.Format(), "DEB store call elapsed=3 op=list"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestTail_SkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.log")
	body := `{"level":"info","message":"one"}` + "\n\n" + `{"level":"info","message":"two"}` + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	entries, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(entries) != 2 || entries[1].Message != "two" {
		t.Fatalf("Tail = %#v", entries)
	}
}
