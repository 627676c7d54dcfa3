// Package tui provides the terminal user interface for encore.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/encore/internal/playlist"
	"github.com/manav03panchal/encore/internal/theme"
	"github.com/manav03panchal/encore/internal/validate"
)

// Mode is what the keyboard is currently driving.
type Mode int

const (
	// ModeBrowse moves through the song list.
	ModeBrowse Mode = iota
	// ModeAdd types a new song name.
	ModeAdd
	// ModeSearch types a filter for the song list.
	ModeSearch
)

// Store is the playlist state the screen reads and dispatches to.
type Store interface {
	Dispatch(playlist.Action) playlist.State
	State() playlist.State
}

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// PlaylistConfig holds configuration for the playlist screen.
type PlaylistConfig struct {
	Store Store
	Theme *theme.Context
	// Now is used for song ages. Nil uses time.Now.
	Now          func() time.Time
	TickInterval time.Duration
	// HistoryRows is how many activity entries are shown.
	HistoryRows int
}

// PlaylistModel is the bubbletea model for the playlist screen.
type PlaylistModel struct {
	store Store
	theme *theme.Context
	now   func() time.Time

	state    playlist.State
	visible  []playlist.Song
	selected int
	mode     Mode
	filter   string

	input  textinput.Model
	search textinput.Model

	width      int
	height     int
	message    string
	messageExp time.Time

	tickInterval time.Duration
	historyRows  int
}

// NewPlaylistModel creates a new playlist screen model.
func NewPlaylistModel(config PlaylistConfig) *PlaylistModel {
	if config.Theme == nil {
		config.Theme = theme.New(false)
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.TickInterval == 0 {
		config.TickInterval = time.Second
	}
	if config.HistoryRows == 0 {
		config.HistoryRows = 5
	}

	in := textinput.New()
	in.Placeholder = "Add a song"
	in.CharLimit = 200
	in.Width = 40

	search := textinput.New()
	search.Placeholder = "Search songs"
	search.CharLimit = 200
	search.Width = 40

	m := &PlaylistModel{
		store:        config.Store,
		theme:        config.Theme,
		now:          config.Now,
		input:        in,
		search:       search,
		tickInterval: config.TickInterval,
		historyRows:  config.HistoryRows,
	}
	m.refresh(config.Store.State())
	return m
}

// Init initializes the model.
func (m *PlaylistModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tickCmd())
}

// Update handles messages and updates the model.
func (m *PlaylistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()
	}

	return m, m.updateInputs(msg)
}

// handleKeyPress handles keyboard input.
func (m *PlaylistModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+z":
		m.undo()
		return m, nil
	case "ctrl+y":
		m.redo()
		return m, nil
	}

	switch m.mode {
	case ModeAdd:
		return m.handleAddKey(msg)
	case ModeSearch:
		return m.handleSearchKey(msg)
	}
	return m.handleBrowseKey(msg)
}

func (m *PlaylistModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "a", "i", "tab":
		m.mode = ModeAdd
		return m, m.input.Focus()

	case "/":
		m.mode = ModeSearch
		return m, m.search.Focus()

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}

	case "d", "x", "delete", "backspace":
		m.removeSelected()

	case "u":
		m.undo()

	case "r":
		m.redo()

	case "c":
		m.dispatch(playlist.Clear{})
	}

	return m, nil
}

func (m *PlaylistModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		name := validate.SanitizeName(m.input.Value())
		before := m.state
		m.dispatch(playlist.Add{SongName: name})
		if len(m.state.Songs) == len(before.Songs) {
			m.setMessage("Enter a song name first", 2*time.Second)
			return m, nil
		}
		m.input.Reset()
		m.selected = len(m.visible) - 1
		return m, nil

	case tea.KeyEsc:
		m.input.Blur()
		m.mode = ModeBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PlaylistModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.search.Blur()
		m.mode = ModeBrowse
		return m, nil

	case tea.KeyEsc:
		m.search.Reset()
		m.search.Blur()
		m.mode = ModeBrowse
		m.applyFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter(m.search.Value())
	return m, cmd
}

func (m *PlaylistModel) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.search, cmd = m.search.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *PlaylistModel) removeSelected() {
	if len(m.visible) == 0 {
		return
	}
	song := m.visible[m.selected]
	m.dispatch(playlist.Remove{ID: song.ID})
}

func (m *PlaylistModel) undo() {
	if !m.state.CanUndo() {
		m.setMessage("Nothing to undo", 2*time.Second)
		return
	}
	m.dispatch(playlist.Undo{})
}

func (m *PlaylistModel) redo() {
	if !m.state.CanRedo() {
		m.setMessage("Nothing to redo", 2*time.Second)
		return
	}
	m.dispatch(playlist.Redo{})
}

func (m *PlaylistModel) dispatch(a playlist.Action) {
	m.refresh(m.store.Dispatch(a))
}

// refresh takes a new state and keeps the selection in range.
func (m *PlaylistModel) refresh(s playlist.State) {
	m.state = s
	m.applyFilter(m.filter)
}

func (m *PlaylistModel) applyFilter(query string) {
	m.filter = strings.TrimSpace(query)
	matches := playlist.Search(m.state, m.filter)
	m.visible = make([]playlist.Song, len(matches))
	for i, match := range matches {
		m.visible[i] = match.Song
	}

	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// setMessage sets a temporary message.
func (m *PlaylistModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *PlaylistModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Mode returns what the keyboard is driving.
func (m *PlaylistModel) Mode() Mode { return m.mode }

// Selected returns the highlighted song, if any.
func (m *PlaylistModel) Selected() (playlist.Song, bool) {
	if len(m.visible) == 0 {
		return playlist.Song{}, false
	}
	return m.visible[m.selected], true
}

// View renders the playlist screen.
func (m *PlaylistModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	st := m.theme.Styles
	var sections []string

	title := st.Title.Render("Playlist")
	count := st.Subtitle.Render(fmt.Sprintf("%d songs", len(m.state.Songs)))
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", count))

	switch m.mode {
	case ModeAdd:
		sections = append(sections, m.input.View())
	case ModeSearch:
		sections = append(sections, m.search.View())
	}

	if m.message != "" {
		sections = append(sections, st.Warning.Render(m.message))
	}

	songs := &SongsComponent{
		Songs:    m.visible,
		Selected: m.selected,
		Focused:  m.mode == ModeBrowse,
		Filter:   m.filter,
		Width:    m.width,
		Now:      m.now(),
		Theme:    m.theme,
	}
	sections = append(sections, songs.View())
	sections = append(sections, Controls(m.theme, m.state.CanUndo(), m.state.CanRedo()))

	history := &HistoryComponent{
		History: m.state.History,
		Limit:   m.historyRows,
		Width:   m.width,
		Theme:   m.theme,
	}
	sections = append(sections, history.View())
	sections = append(sections, HelpBar(m.theme, m.mode))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the playlist screen.
func Run(config PlaylistConfig) error {
	p := tea.NewProgram(NewPlaylistModel(config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
