package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/notes/internal/logtail"
)

// LogTailLines is how many client log lines the log overlay shows.
const LogTailLines = 200

type logLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

func loadLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Tail(path, LogTailLines)
		return logLoadedMsg{entries: entries, err: err}
	}
}

// logModal shows the tail of the client log, newest at the bottom.
type logModal struct {
	path string
	view viewport.Model
}

func newLogModal(path string, entries []logtail.Entry, theme Theme, width, height int) logModal {
	vp := viewport.New(maxInt(width-8, 20), maxInt(height-8, 5))
	vp.SetContent(formatLogEntries(entries, theme))
	vp.GotoBottom()
	return logModal{path: path, view: vp}
}

func formatLogEntries(entries []logtail.Entry, theme Theme) string {
	styles := theme.Styles()
	if len(entries) == 0 {
		return styles.FaintText.Render("Log is empty.")
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := e.Format()
		switch e.Level {
		case "warn":
			line = styles.WarningText.Render(line)
		case "error", "fatal", "panic":
			line = styles.DangerText.Render(line)
		case "debug", "trace":
			line = styles.FaintText.Render(line)
		default:
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (l logModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Cancel), key.Matches(keyMsg, keys.Logs), key.Matches(keyMsg, keys.Quit):
		return l, nil, true
	case key.Matches(keyMsg, keys.Up):
		l.view.ScrollUp(1)
	case key.Matches(keyMsg, keys.Down):
		l.view.ScrollDown(1)
	case key.Matches(keyMsg, keys.PageUp):
		l.view.HalfPageUp()
	case key.Matches(keyMsg, keys.PageDown):
		l.view.HalfPageDown()
	case key.Matches(keyMsg, keys.Top):
		l.view.GotoTop()
	case key.Matches(keyMsg, keys.Bottom):
		l.view.GotoBottom()
	}
	return l, nil, false
}

func (l logModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Client log")+"  "+styles.FaintText.Render(l.path),
		"",
		l.view.View(),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(0, 1).
		Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
