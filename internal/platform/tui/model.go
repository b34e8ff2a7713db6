package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// defaultHoldTicks is used for games that do not choose their own.
const defaultHoldTicks = 8

// holdTicker is implemented by games that configure how long a key press
// stays held.
type holdTicker interface {
	HoldTicks() int
}

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(screenW, screenH int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	termH   int
	mapper  *KeyMapper
	help    help.Model
	holds   *core.HoldTracker
	pending core.InputFrame // One-shot actions for the next tick

	gameState core.GameState
	status    string
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg carries the full terminal size; the help footer is taken off it.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:    game,
		config:  cfg,
		termH:   cfg.ScreenH,
		mapper:  NewKeyMapper(),
		help:    help.New(),
		holds:   core.NewHoldTracker(defaultHoldTicks),
		pending: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.playfieldHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if ht, ok := m.game.(holdTicker); ok {
		m.holds.SetHoldTicks(ht.HoldTicks())
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.mapper.Keys()
	m.status = ""

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.status = "screenshot failed: " + err.Error()
		} else {
			m.status = "saved " + path
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.termH)
	}

	action, isQuit := m.mapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action.IsMovement():
		m.holds.Press(action)
	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.termH = height
	m.help.Width = width
	m.config.ScreenW = width
	m.config.ScreenH = m.playfieldHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step with the held and pending actions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.holds.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State

	m.holds.Advance()
	m.pending.Clear()
	if result.LevelEnded || m.gameState.GameOver {
		// Keys held at the end of a level do not carry into the next one
		m.holds.Reset()
	}

	return m, tickCmd(m.config.TickRate)
}

// playfieldHeight is the terminal height left after the footer.
func (m Model) playfieldHeight() int {
	return max(m.termH-lipgloss.Height(m.help.View(m.mapper.Keys())), 1)
}

// footer shows the key help, or the last status message in its place.
func (m Model) footer() string {
	if m.status != "" && !m.help.ShowAll {
		return helpStyle.Render(m.status)
	}
	return helpStyle.Render(m.help.View(m.mapper.Keys()))
}

// saveScreenshot writes the current frame as plain text to
// ~/.platformer/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(game, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
