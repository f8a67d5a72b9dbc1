package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/notes/internal/notestore"
	"github.com/five82/notes/internal/prefs"
	"github.com/five82/notes/internal/state"
)

// flashDuration is how long footer notices stay visible.
const flashDuration = 3 * time.Second

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      notestore.Store
	Logger     zerolog.Logger
	BackendURL string
	LogPath    string
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      notestore.Store
	log        zerolog.Logger
	backendURL string
	logPath    string
	prefsPath  string
	keys       keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal

	// Engine state; changed only through dispatch
	st      state.State
	startup state.Effect

	// Sidebar cursor, independent of the selection until enter is pressed
	cursor int

	// Main panel
	detail   viewport.Model
	detailID string
	form     noteForm
	spinner  spinner.Model

	// Footer notice
	flash      string
	flashErr   bool
	flashUntil time.Time
}

// New creates a new Bubble Tea model. The startup list request is issued by
// Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	st, eff := state.Reduce(state.New(), state.Startup{})

	return Model{
		ctx:        ctx,
		store:      opts.Store,
		log:        opts.Logger.With().Str("component", "ui").Logger(),
		backendURL: opts.BackendURL,
		logPath:    opts.LogPath,
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(opts.ThemeName),
		st:         st,
		startup:    eff,
		form:       newNoteForm(),
		spinner:    sp,
	}
}

// State returns the engine state the model is rendering.
func (m Model) State() state.State {
	return m.st
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		performCmd(m.ctx, m.store, m.startup),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case resultMsg:
		m.log.Debug().Str("event", eventName(msg.ev)).Msg("store result")
		return m, m.dispatch(msg.ev)

	case intentMsg:
		if m.st.Loading {
			return m, nil
		}
		return m, m.dispatch(msg.ev)

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("clipboard")
			return m, m.setFlash(msg.err.Error(), true)
		}
		return m, m.setFlash("Copied note content", false)

	case logLoadedMsg:
		if msg.err != nil {
			return m, m.setFlash(msg.err.Error(), true)
		}
		m.modal = newLogModal(m.logPath, msg.entries, m.theme, m.width, m.height)
		return m, nil

	case flashExpiredMsg:
		if !time.Now().Before(m.flashUntil) {
			m.flash = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.st.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.inForm() && m.modal == nil {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.inForm() {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Logs):
		if m.logPath == "" {
			return m, m.setFlash("Logging to file is disabled", true)
		}
		return m, loadLogCmd(m.logPath)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = maxInt(len(m.st.Notes)-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.detail.HalfPageUp()
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.detail.HalfPageDown()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if m.st.Current == nil || m.st.Current.ID == "" {
			return m, nil
		}
		return m, copyCmd(m.st.Current.Content)
	}

	// Intents wait for the outstanding store call.
	if m.st.Loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		if row, ok := m.cursorRow(); ok {
			return m, m.dispatch(state.Select{ID: row.ID})
		}
	case key.Matches(msg, m.keys.New):
		return m, m.dispatch(state.BeginCreate{})
	case key.Matches(msg, m.keys.Edit):
		return m, m.dispatch(state.BeginEdit{})
	case key.Matches(msg, m.keys.Delete):
		if row, ok := m.cursorRow(); ok {
			m.modal = confirmDeleteModal{id: row.ID, title: row.Title}
		}
	}
	return m, nil
}

// handleFormKey processes keyboard input while the create or edit form is open.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		if m.st.Loading {
			return m, nil
		}
		draft := m.form.draft()
		if m.st.Mode == state.ModeCreate {
			return m, m.dispatch(state.SaveNew{Draft: draft})
		}
		return m, m.dispatch(state.SaveEdit{Draft: draft})
	case key.Matches(msg, m.keys.Cancel):
		if m.st.Loading {
			return m, nil
		}
		return m, m.dispatch(state.Cancel{})
	case key.Matches(msg, m.keys.NextField):
		return m, m.form.toggleFocus()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// dispatch feeds ev to the engine, refreshes derived view state and returns
// the command that performs the next store call.
func (m *Model) dispatch(ev state.Event) tea.Cmd {
	prev := m.st
	next, eff := state.Reduce(m.st, ev)
	m.st = next

	cmds := []tea.Cmd{m.sync(prev), performCmd(m.ctx, m.store, eff)}
	if next.Loading && !prev.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	if next.Err != "" && next.Err != prev.Err {
		m.log.Warn().Str("event", eventName(ev)).Str("err", next.Err).Msg("engine error")
	}
	return tea.Batch(cmds...)
}

// sync brings the form, cursor and detail pane in line with a new state.
func (m *Model) sync(prev state.State) tea.Cmd {
	var cmd tea.Cmd
	wasForm := prev.Mode != state.ModeDetail
	switch {
	case m.inForm() && (!wasForm || prev.Mode != m.st.Mode):
		var draft notestore.Draft
		if m.st.Current != nil {
			draft = m.st.Current.Draft()
		}
		cmd = m.form.reset(draft)
	case !m.inForm() && wasForm:
		m.form.blur()
	}

	if m.st.SelectedID != prev.SelectedID {
		if idx := m.st.SelectedIndex(); idx >= 0 {
			m.cursor = idx
		}
	}
	m.clampCursor()
	m.updateDetailViewport()
	return cmd
}

func (m Model) inForm() bool {
	return m.st.Mode == state.ModeCreate || m.st.Mode == state.ModeEdit
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.st.Notes) {
		m.cursor = len(m.st.Notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) cursorRow() (notestore.Summary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.st.Notes) {
		return notestore.Summary{}, false
	}
	return m.st.Notes[m.cursor], true
}

func (m *Model) toggleTheme() tea.Cmd {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.updateDetailViewport()
	if m.prefsPath != "" {
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.log.Warn().Err(err).Msg("save prefs")
			return m.setFlash("Theme not saved: "+err.Error(), true)
		}
	}
	return nil
}

func (m *Model) setFlash(text string, isErr bool) tea.Cmd {
	m.flash = text
	m.flashErr = isErr
	m.flashUntil = time.Now().Add(flashDuration)
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{}
	})
}

func (m *Model) resize() {
	mainWidth := m.width - sidebarWidth(m.width)
	bodyHeight := maxInt(m.height-chromeHeight, 3)

	// Border plus horizontal padding.
	innerWidth := maxInt(mainWidth-4, 1)
	innerHeight := maxInt(bodyHeight-2, 1)

	if !m.ready {
		m.detail = viewport.New(innerWidth, innerHeight)
	} else {
		m.detail.Width = innerWidth
		m.detail.Height = innerHeight
	}
	m.form.setSize(innerWidth, innerHeight)
}

// renderMain renders the header, the sidebar and main panel, and the footer.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	bodyHeight := maxInt(m.height-chromeHeight, 3)
	sideWidth := sidebarWidth(m.width)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(sideWidth, bodyHeight),
		m.renderMainPanel(m.width-sideWidth, bodyHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Header.Width(m.width).Render(m.renderHeader()),
		body,
		styles.Footer.Width(m.width).Render(m.renderFooter()),
	)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{styles.Title.Render("Notes")}
	if m.backendURL != "" {
		parts = append(parts, styles.MutedText.Render(m.backendURL))
	}
	parts = append(parts, styles.FaintText.Render(m.theme.Name))
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	if m.flash != "" {
		if m.flashErr {
			return styles.DangerText.Render(m.flash)
		}
		return styles.SuccessText.Render(m.flash)
	}
	return m.renderShortHelp()
}

// Messages

// resultMsg carries a finished store call back into the update loop.
type resultMsg struct {
	ev state.Event
}

type flashExpiredMsg struct{}

// Commands

// performCmd runs eff off the update loop. A nil effect yields a nil command.
func performCmd(ctx context.Context, store notestore.Store, eff state.Effect) tea.Cmd {
	if eff == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		return resultMsg{ev: state.Perform(ctx, store, eff)}
	}
}

func eventName(ev state.Event) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", ev), "state.")
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
