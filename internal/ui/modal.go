package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/notes/internal/state"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const deletePrompt = "Are you sure you want to delete this note?"

// confirmDeleteModal asks before deleting a note. Answering yes emits the
// Delete intent for id; anything else closes the dialog.
type confirmDeleteModal struct {
	id    string
	title string
}

type intentMsg struct {
	ev state.Event
}

func (c confirmDeleteModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		id := c.id
		return c, func() tea.Msg { return intentMsg{ev: state.Delete{ID: id}} }, true
	case key.Matches(keyMsg, keys.No):
		return c, nil, true
	}
	return c, nil, false
}

func (c confirmDeleteModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.DangerText.Render("Delete note"),
		"",
		styles.Text.Render(deletePrompt),
		styles.MutedText.Render(displayTitle(c.title)),
		"",
		styles.WarningText.Render("y")+styles.MutedText.Render(" delete  ")+
			styles.WarningText.Render("n")+styles.MutedText.Render(" keep"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Danger)).
		Padding(1, 2).
		Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
