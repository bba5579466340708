package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tank/internal/core"
	"github.com/vovakirdan/tui-tank/internal/registry"
)

// CuePlayer plays the sound cues raised by a tick.
type CuePlayer interface {
	Play(cues []core.Cue)
}

// Options configures a TUI session.
type Options struct {
	Runtime core.RuntimeConfig
	Sound   CuePlayer   // Nil disables sound
	Logger  *log.Logger // Nil discards
	Linger  time.Duration
}

// DefaultLinger is how long the game-over screen stays up without a key press.
const DefaultLinger = 30 * time.Second

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	sound      CuePlayer
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	linger     time.Duration
	overSince  time.Time // When the game-over screen appeared
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and starts a run.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	linger := opts.Linger
	if linger <= 0 {
		linger = DefaultLinger
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:     cfg,
		sound:      opts.Sound,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		linger:     linger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key leaves the game-over screen
	if m.gameState.GameOver {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.logger.Info("session aborted", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize processes window resize events. The world has fixed
// dimensions, so only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		if now.Sub(m.overSince) >= m.linger {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.sound != nil {
		m.sound.Play(result.Cues)
	}

	if m.gameState.GameOver {
		m.overSince = now
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tank", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the session ends.
// Returns the final game state.
func Run(game registry.Game, opts Options) (core.GameState, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}

	if m, ok := final.(Model); ok {
		return m.GameState(), nil
	}
	return game.State(), nil
}
