package ui

import (
	"testing"

	"github.com/five82/notes/internal/prefs"
)

func TestGetTheme_FallsBackToLight(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{prefs.ThemeLight, prefs.ThemeLight},
		{prefs.ThemeDark, prefs.ThemeDark},
		{"dark", prefs.ThemeDark},
		{"Dracula", prefs.ThemeLight},
		{"", prefs.ThemeLight},
	}
	for _, tc := range cases {
		if got := GetTheme(tc.name).Name; got != tc.want {
			t.Fatalf("GetTheme(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestNextTheme_Alternates(t *testing.T) {
	if got := NextTheme(prefs.ThemeLight); got != prefs.ThemeDark {
		t.Fatalf("NextTheme(light) = %q, want dark", got)
	}
	if got := NextTheme(prefs.ThemeDark); got != prefs.ThemeLight {
		t.Fatalf("NextTheme(dark) = %q, want light", got)
	}
}

func TestThemes_DarkFlagMatchesName(t *testing.T) {
	if lightTheme().Dark {
		t.Fatalf("light theme marked dark")
	}
	if !darkTheme().Dark {
		t.Fatalf("dark theme not marked dark")
	}
}

func TestDisplayTitle(t *testing.T) {
	cases := map[string]string{
		"":               untitled,
		"   ":            untitled,
		"a\n b":          "a b",
		"Shopping list ": "Shopping list",
	}
	for in, want := range cases {
		if got := displayTitle(in); got != want {
			t.Fatalf("displayTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestListWindow_KeepsCursorVisible(t *testing.T) {
	cases := []struct {
		total, cursor, visible int
		start, end             int
	}{
		{3, 0, 10, 0, 3},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
		{4, 2, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := listWindow(tc.total, tc.cursor, tc.visible)
		if start != tc.start || end != tc.end {
			t.Fatalf("listWindow(%d,%d,%d) = %d,%d want %d,%d", tc.total, tc.cursor, tc.visible, start, end, tc.start, tc.end)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 5); got != "ab..." {
		t.Fatalf("truncate = %q, want %q", got, "ab...")
	}
	if got := truncate("abc", 5); got != "abc" {
		t.Fatalf("truncate = %q, want %q", got, "abc")
	}
}

func TestRenderMarkdown_EmptyAndPlain(t *testing.T) {
	if got := renderMarkdown("\n\n", 40, false); got != "" {
		t.Fatalf("renderMarkdown(empty) = %q", got)
	}
	if got := renderMarkdown("hello world", 40, true); got == "" {
		t.Fatalf("renderMarkdown dropped content")
	}
}
