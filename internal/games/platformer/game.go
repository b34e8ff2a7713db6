// Package platformer drives the platformer simulation as a registry game:
// it runs a campaign over a level pack, tracks lives across levels, and
// paints the current state into a core.Screen.
package platformer

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "platformer"

// Minimum screen size the game draws at.
const (
	MinScreenW = 20
	MinScreenH = 6
)

// phase is the campaign stage the driver is in.
type phase uint8

const (
	phasePlaying  phase = iota // Level in progress
	phaseEnding                // Level finished, cooldown running
	phaseGameOver              // Out of lives
	phaseComplete              // Every level cleared
)

func (p phase) String() string {
	switch p {
	case phasePlaying:
		return "playing"
	case phaseEnding:
		return "ending"
	case phaseGameOver:
		return "game_over"
	case phaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Settings set via CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsPath       string
	startLevel       int
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		logger.Warn("ignoring difficulty", "err", err)
		p = config.DifficultyFixed
	}
	difficultyPreset = p
}

// SetLevelsPath overrides the level pack path from the config.
func SetLevelsPath(path string) {
	levelsPath = path
}

// SetStartLevel sets the zero-based index of the first level played.
func SetStartLevel(index int) {
	startLevel = max(index, 0)
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the platformer campaign.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	dt      float64
	ending  int // Cooldown length in ticks

	levels     []levels.Level
	levelIndex int
	lives      int

	state      sim.State
	phase      phase
	endingLeft int
	paused     bool
	tick       uint64

	display        *ScreenDisplay
	screenTooSmall bool
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads config and levels and starts the campaign at the start level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.reset(runtime, startLevel)
}

// reset reloads everything and starts the campaign at level index first.
func (g *Game) reset(runtime core.RuntimeConfig, first int) {
	g.runtime = runtime

	cfg, source, err := config.LoadPlatformer(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg, source = config.DefaultPlatformerConfig(), config.SourceHardcoded
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	logger.Debug("config loaded", "source", source, "lives", cfg.Gameplay.Lives)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = math.Min(1/float64(tickRate), cfg.Gameplay.MaxStep)
	g.ending = EndingTicks(cfg.Gameplay.EndingDelay, g.dt)

	g.levels = g.loadLevels()

	g.display = NewScreenDisplay(cfg.Display.TileWidth, cfg.Display.ScrollMargin)
	g.display.Resize(runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.tick = 0
	g.paused = false
	g.lives = cfg.Gameplay.Lives
	if len(g.levels) == 0 {
		g.state = sim.State{}
		g.phase = phaseGameOver
		return
	}
	g.startLevel(min(first, len(g.levels)-1))
}

// loadLevels resolves the level pack, falling back to the built-in one.
func (g *Game) loadLevels() []levels.Level {
	path := levelsPath
	if path == "" {
		path = g.cfg.Levels.Path
	}

	lvls, err := levels.Load(path)
	switch {
	case err == nil:
		return lvls
	case len(lvls) > 0:
		logger.Warn("some levels failed to load", "path", path, "err", err)
		return lvls
	}

	logger.Error("level pack failed to load, using built-in levels", "path", path, "err", err)
	lvls, err = levels.Default()
	if err != nil {
		logger.Error("built-in levels failed to load", "err", err)
		return nil
	}
	return lvls
}

// startLevel begins the level at index with the campaign's current lives.
func (g *Game) startLevel(index int) {
	g.levelIndex = index
	info := g.levels[index]

	lvl, err := info.Parse(g.runtime.Seed + int64(index))
	if err != nil {
		// Loaded levels were validated; a failure here means a hand-built list
		logger.Error("level failed to parse", "level", info.ID, "err", err)
		g.phase = phaseGameOver
		return
	}

	g.state = sim.StartWithLives(lvl, g.lives).WithPhysics(g.cfg.ToPhysics())
	g.phase = phasePlaying
	g.endingLeft = 0

	g.display.Clear()
	g.display.SetCaption(fmt.Sprintf("%d/%d %s", index+1, len(g.levels), info.Name))
	g.display.SyncState(g.state)

	logger.Info("level start", "level", info.ID, "lives", g.lives)
}

// EndingTicks converts the ending delay into a whole number of steps of dt.
func EndingTicks(delay, dt float64) int {
	if delay <= 0 || dt <= 0 {
		return 0
	}
	n := delay / dt
	// 0.2 / (1/60) is 12.000000000000002, which is 12 ticks
	if r := math.Round(n); math.Abs(n-r) < 1e-9 {
		return int(r)
	}
	return int(math.Ceil(n))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// A restarted campaign begins at the first level
	if in.Has(core.ActionRestart) && (g.phase == phaseGameOver || g.phase == phaseComplete) {
		g.reset(g.runtime, 0)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && (g.phase == phasePlaying || g.phase == phaseEnding) {
		g.paused = !g.paused
	}

	if g.paused || g.phase == phaseGameOver || g.phase == phaseComplete {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.state = g.state.Update(g.dt, KeysFrom(in))
	g.display.SyncState(g.state)

	if g.phase == phasePlaying && g.state.Status != sim.StatusPlaying {
		g.phase = phaseEnding
		g.endingLeft = g.ending
		logger.Info("level ended", "level", g.levels[g.levelIndex].ID, "status", g.state.Status, "lives", g.state.Lives)
	}

	if g.phase == phaseEnding {
		if g.endingLeft > 0 {
			g.endingLeft--
		} else {
			g.finishLevel()
			return core.StepResult{State: g.State(), LevelEnded: true}
		}
	}

	return core.StepResult{State: g.State()}
}

// finishLevel tears down the ended level and applies its outcome.
func (g *Game) finishLevel() {
	g.display.Clear()
	g.lives = g.state.Lives

	switch {
	case g.state.Status == sim.StatusWon && g.levelIndex+1 < len(g.levels):
		g.startLevel(g.levelIndex + 1)
	case g.state.Status == sim.StatusWon:
		g.phase = phaseComplete
		logger.Info("campaign complete", "lives", g.lives, "ticks", g.tick)
	case g.lives <= 0:
		g.phase = phaseGameOver
		logger.Info("game over", "level", g.levels[g.levelIndex].ID, "ticks", g.tick)
	default:
		g.startLevel(g.levelIndex)
	}
}

// KeysFrom converts held actions into the key snapshot the simulation reads.
func KeysFrom(in core.InputFrame) sim.Keys {
	keys := sim.Keys{}
	if in.Has(core.ActionLeft) {
		keys[sim.KeyLeft] = true
	}
	if in.Has(core.ActionRight) {
		keys[sim.KeyRight] = true
	}
	if in.Has(core.ActionJump) {
		keys[sim.KeyUp] = true
	}
	return keys
}

// Resize adapts the game to a new screen size without restarting the campaign.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW, g.runtime.ScreenH = screenW, screenH
	g.screenTooSmall = screenW < MinScreenW || screenH < MinScreenH
	if g.display != nil {
		g.display.Resize(screenW, screenH)
	}
}

// HoldTicks returns how many ticks a key press should stay held.
func (g *Game) HoldTicks() int {
	return g.cfg.Input.HoldTicks
}

// Levels returns the loaded level list.
func (g *Game) Levels() []levels.Level {
	return g.levels
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}

	g.display.Draw(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.phase == phaseGameOver:
		g.drawCenteredBox(dst, "GAME OVER", "Press R to restart", core.ColorBrightRed)
	case g.phase == phaseComplete:
		g.drawCenteredBox(dst, "YOU WIN!", "Press R to play again", core.ColorBrightGreen)
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := max(len([]rune(title)), len([]rune(subtitle))) + 6
	h := 5
	r := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, c)
	dst.DrawTextCentered(r.Y+1, title, c)
	dst.DrawTextCentered(r.Y+3, subtitle, core.ColorDefault)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status:   g.state.Status.String(),
		Lives:    g.state.Lives,
		Level:    g.levelIndex,
		Levels:   len(g.levels),
		GameOver: g.phase == phaseGameOver || g.phase == phaseComplete,
		Won:      g.phase == phaseComplete,
		Paused:   g.paused,
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
