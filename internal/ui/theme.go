package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/notes/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string
	Dark bool // selects the markdown palette

	// Base colors
	Background string // Outermost background
	Surface    string // Sidebar and header
	FocusBg    string // Focused input

	// Sidebar colors
	SelectionBg   string // Selected note
	SelectionText string
	CursorBg      string // Row under the cursor when it is not the selection

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style

	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(t.CursorBg)).
			Foreground(lipgloss.Color(t.Text)),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),

		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),
	}
}

// GetTheme returns a theme by name, falling back to the light theme.
func GetTheme(name string) Theme {
	if prefs.NormalizeTheme(name) == prefs.ThemeDark {
		return darkTheme()
	}
	return lightTheme()
}

// NextTheme returns the name of the other theme.
func NextTheme(current string) string {
	return prefs.Prefs{Theme: current}.ToggleTheme().Theme
}

func lightTheme() Theme {
	return Theme{
		Name: prefs.ThemeLight,
		Dark: false,

		Background: "#ffffff",
		Surface:    "#f4f6f8",
		FocusBg:    "#e8eef6",

		SelectionBg:   "#1976d2",
		SelectionText: "#ffffff",
		CursorBg:      "#dde7f3",

		Border:      "#d0d7de",
		BorderFocus: "#1976d2",

		Text:    "#222222",
		Muted:   "#666666",
		Faint:   "#aaaaaa",
		Accent:  "#1976d2",
		Success: "#2e7d32",
		Warning: "#ffb300",
		Danger:  "#d32f2f",
	}
}

func darkTheme() Theme {
	return Theme{
		Name: prefs.ThemeDark,
		Dark: true,

		Background: "#181a1b",
		Surface:    "#222526",
		FocusBg:    "#2c3033",

		SelectionBg:   "#90caf9",
		SelectionText: "#101214",
		CursorBg:      "#2f3a45",

		Border:      "#3a3f44",
		BorderFocus: "#90caf9",

		Text:    "#e0e0e0",
		Muted:   "#9e9e9e",
		Faint:   "#6b6b6b",
		Accent:  "#90caf9",
		Success: "#81c784",
		Warning: "#ffd54f",
		Danger:  "#ef5350",
	}
}
