package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the campaign at the first level, or at --level.

Controls:
  Left/A, Right/D  - Run
  Up/W/Space       - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.platformer/screenshots
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, longer pause after each level
  normal - 3 lives
  hard   - 2 lives
  fixed  - Use the config as is

Examples:
  platformer play
  platformer play --level 2
  platformer play --difficulty hard --levels ./my-levels
  platformer play --log-file play.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number to start at (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagLevel < 1 {
		return fmt.Errorf("--level must be at least 1, got %d", flagLevel)
	}
	platformer.SetStartLevel(flagLevel - 1)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(platformer.ID)
	if err != nil {
		return fail("create game", err)
	}

	logger.Info("starting", "fps", flagFPS, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, cfg); err != nil {
		return fail("run game", err)
	}
	return nil
}
