package ui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/notes/internal/notestore"
)

const (
	titleCharLimit   = 200
	contentCharLimit = 100000
)

type formField int

const (
	fieldTitle formField = iota
	fieldContent
)

// noteForm is the title and content editor shared by create and edit.
type noteForm struct {
	title   textinput.Model
	content textarea.Model
	focus   formField
}

func newNoteForm() noteForm {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = titleCharLimit

	ta := textarea.New()
	ta.Placeholder = "Write your note..."
	ta.ShowLineNumbers = false
	ta.CharLimit = contentCharLimit

	return noteForm{title: ti, content: ta}
}

// reset fills the form from d and focuses the title.
func (f *noteForm) reset(d notestore.Draft) tea.Cmd {
	f.title.SetValue(d.Title)
	f.title.CursorEnd()
	f.content.SetValue(d.Content)
	return f.focusField(fieldTitle)
}

func (f *noteForm) draft() notestore.Draft {
	return notestore.Draft{Title: f.title.Value(), Content: f.content.Value()}
}

func (f *noteForm) toggleFocus() tea.Cmd {
	if f.focus == fieldTitle {
		return f.focusField(fieldContent)
	}
	return f.focusField(fieldTitle)
}

func (f *noteForm) focusField(field formField) tea.Cmd {
	f.focus = field
	if field == fieldTitle {
		f.content.Blur()
		return f.title.Focus()
	}
	f.title.Blur()
	return f.content.Focus()
}

func (f *noteForm) blur() {
	f.title.Blur()
	f.content.Blur()
}

func (f *noteForm) setSize(width, height int) {
	if width < 10 {
		width = 10
	}
	f.title.Width = width - 2
	f.content.SetWidth(width)
	// Title, its border and the label lines take five rows.
	if h := height - 5; h > 3 {
		f.content.SetHeight(h)
	} else {
		f.content.SetHeight(3)
	}
}

// update routes a message to the focused field.
func (f noteForm) update(msg tea.Msg) (noteForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

func (f noteForm) view(theme Theme, heading string) string {
	styles := theme.Styles()
	label := func(text string, field formField) string {
		if f.focus == field {
			return styles.AccentText.Bold(true).Render(text)
		}
		return styles.MutedText.Render(text)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(heading),
		label("Title", fieldTitle),
		f.title.View(),
		label("Content", fieldContent),
		f.content.View(),
	)
}
