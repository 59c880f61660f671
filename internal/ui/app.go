package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glug/internal/prefs"
	"github.com/five82/glug/internal/record"
	"github.com/five82/glug/internal/state"
)

// Options configures the UI.
type Options struct {
	Store     *state.Store
	File      string
	Palette   record.Palette
	PollTick  time.Duration
	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	file      string
	prefsPath string
	pollTick  time.Duration
	styles    Styles
	keys      keyMap
	help      help.Model

	// UI state
	width    int
	height   int
	ready    bool
	viewport viewport.Model

	// Data state
	snapshot state.Snapshot
	minLevel record.Level
	follow   bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	palette := opts.Palette
	if palette == (record.Palette{}) {
		palette = record.DefaultPalette
	}

	return Model{
		store:     opts.Store,
		file:      opts.File,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		styles:    NewStyles(palette),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		minLevel:  opts.Prefs.MinLevel,
		follow:    opts.Prefs.Follow,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, 0)
		}
		m.ready = true
		m.resize()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.updateLogViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.help.View(m.keys),
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFollow):
		m.follow = !m.follow
		if m.follow {
			m.viewport.GotoBottom()
		}
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.CycleLevel):
		m.minLevel = nextLevel(m.minLevel)
		m.savePrefs()
		m.updateLogViewport()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.follow = true
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.pollTick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return m, tea.Batch(cmds...)
}

// resize fits the log pane between the header and the help line.
func (m *Model) resize() {
	m.help.Width = m.width
	height := m.height - 1 - lipgloss.Height(m.help.View(m.keys))
	if height < 0 {
		height = 0
	}
	m.viewport.Width = m.width
	m.viewport.Height = height
	m.updateLogViewport()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{MinLevel: m.minLevel, Follow: m.follow})
}

// nextLevel steps the filter one level less verbose, wrapping to trace.
func nextLevel(l record.Level) record.Level {
	if l <= record.LevelError {
		return record.LevelTrace
	}
	return l - 1
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
