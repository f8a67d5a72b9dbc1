package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSidebar renders the note list. The selected note is highlighted and
// the cursor row is marked when it differs from the selection.
func (m Model) renderSidebar(width, height int) string {
	styles := m.theme.Styles()
	inner := maxInt(width-2, 1)
	rows := maxInt(height-2, 1)

	lines := make([]string, 0, rows)
	lines = append(lines, styles.Title.Render("Notes")+styles.MutedText.Render("  n new"))
	lines = append(lines, styles.FaintText.Render(strings.Repeat("─", inner)))

	notes := m.st.Notes
	if len(notes) == 0 {
		if !m.st.Loading || notes != nil {
			lines = append(lines, styles.FaintText.Render("No notes yet"))
		}
	} else {
		visible := rows - len(lines)
		start, end := listWindow(len(notes), m.cursor, visible)
		for i := start; i < end; i++ {
			n := notes[i]
			label := truncate(displayTitle(n.Title), inner-2)
			style := styles.Text
			switch {
			case n.ID == m.st.SelectedID:
				style = styles.Selected
			case i == m.cursor:
				style = styles.Cursor
			}
			if strings.TrimSpace(n.Title) == "" && n.ID != m.st.SelectedID {
				style = style.Italic(true).Foreground(lipgloss.Color(m.theme.Faint))
			}
			prefix := "  "
			if i == m.cursor {
				prefix = "› "
			}
			lines = append(lines, style.Width(inner).Render(prefix+label))
		}
	}

	pane := styles.Pane
	if !m.inForm() {
		pane = styles.PaneFocused
	}
	return pane.Width(inner).Height(rows).Render(strings.Join(lines, "\n"))
}

// listWindow returns the [start, end) range of rows to show so that cursor
// stays visible.
func listWindow(total, cursor, visible int) (int, int) {
	if visible <= 0 {
		return 0, 0
	}
	if total <= visible {
		return 0, total
	}
	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}
