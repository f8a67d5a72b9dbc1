package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/notes/internal/state"
)

const (
	selectPrompt = "Select a note to view details."
	noContent    = "No content."
)

// detailContent builds the scrollable body of the detail pane.
func (m Model) detailContent(width int) string {
	styles := m.theme.Styles()
	note := m.st.Current
	if note == nil {
		return styles.MutedText.Render(selectPrompt)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(displayTitle(note.Title)))
	b.WriteString("\n")
	if updated := formatUpdated(note.ParsedTimestamp()); updated != "" {
		b.WriteString(styles.FaintText.Render("Last updated: " + updated))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if strings.TrimSpace(note.Content) == "" {
		b.WriteString(styles.FaintText.Italic(true).Render(noContent))
		return b.String()
	}
	b.WriteString(renderMarkdown(note.Content, width, m.theme.Dark))
	return b.String()
}

// updateDetailViewport re-renders the detail body, keeping the scroll
// position when the same note is shown again.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	id := ""
	if m.st.Current != nil {
		id = m.st.Current.ID
	}
	m.detail.SetContent(m.detailContent(m.detail.Width))
	if id != m.detailID {
		m.detail.GotoTop()
		m.detailID = id
	}
}

// renderMainPanel picks what the main panel shows: loading, then the error,
// then the create or edit form, then the note detail.
func (m Model) renderMainPanel(width, height int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-4, 1)
	rows := maxInt(height-2, 1)
	pane := styles.Pane.Padding(0, 1)
	if m.inForm() {
		pane = styles.PaneFocused.Padding(0, 1)
	}

	var body string
	switch {
	case m.st.Loading:
		body = lipgloss.Place(inner, rows, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+styles.MutedText.Render(" Loading..."))
	case m.st.Err != "" && !m.inForm():
		body = lipgloss.Place(inner, rows, lipgloss.Center, lipgloss.Center,
			styles.DangerText.Render(m.st.Err))
	case m.inForm():
		heading := "Edit note"
		if m.st.Mode == state.ModeCreate {
			heading = "New note"
		}
		body = m.form.view(m.theme, heading)
		if m.st.Err != "" {
			body = lipgloss.JoinVertical(lipgloss.Left, styles.DangerText.Render(m.st.Err), body)
		}
	default:
		body = m.detail.View()
	}
	// Width includes the padding but not the border.
	return pane.Width(inner + 2).Height(rows).Render(body)
}
