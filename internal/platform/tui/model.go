package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform"
	"github.com/vovakirdan/invaders/internal/registry"
)

// Smallest terminal the playfield is drawn on.
const (
	minWidth  = 20
	minHeight = 8
)

var tooSmallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorRed.Hex()))

// Options tunes the terminal platform.
type Options struct {
	HoldInitial time.Duration // Key hold window after a first press
	HoldRepeat  time.Duration // Key hold window after an auto-repeat
	Clock       core.Clock    // Defaults to the system clock
}

// Model is the Bubble Tea model running one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *Canvas
	clock    core.Clock
	tracker  *KeyTracker
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the terminal size; one line is kept for the help footer.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options, logger *log.Logger) Model {
	if opts.Clock == nil {
		opts.Clock = core.NewSystemClock()
	}
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = game.FrameDelay()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-1)
	fieldW, fieldH := game.Playfield()

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  screen,
		canvas:  NewCanvas(screen, fieldW, fieldH),
		clock:   opts.Clock,
		tracker: NewKeyTracker(opts.HoldInitial, opts.HoldRepeat),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		config:  cfg,
		state:   game.State(),
	}
}

// Init starts the tick loop. The game is expected to be Reset already.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		return m.handleBlur()

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records a key report. Movement and fire are sampled on the
// next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if k, ok := m.keys.GameKey(msg); ok {
		m.tracker.Press(k, m.clock.Ticks())
	}
	return m, nil
}

// handleBlur drops every held key. Releases typed while the terminal is
// unfocused never arrive, so keys would otherwise stay held.
func (m Model) handleBlur() (tea.Model, tea.Cmd) {
	for _, k := range keyOrder {
		m.tracker.Release(k)
	}
	return m, nil
}

// handleResize processes window resize events. The match keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick samples the held keys and advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.clock.Ticks()
	in := core.InputFrame{Keys: m.tracker.Pressed(now), Now: now}

	result := m.game.Step(in)
	m.state = result.State
	platform.LogStep(m.logger, m.game.ID(), result)

	return m, tickCmd(m.config.FrameDelay)
}

// State returns the game state after the latest tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.config.ScreenW < minWidth || m.config.ScreenH < minHeight {
		return tooSmallStyle.Render("terminal too small")
	}

	m.screen.Clear()
	m.game.Render(m.canvas)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options, logger *log.Logger) error {
	model := NewModel(game, cfg, opts, logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	_, err := p.Run()
	return err
}
