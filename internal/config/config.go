// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Display  DisplayConfig  `yaml:"display"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// PhysicsConfig defines the simulation constants.
type PhysicsConfig struct {
	PlayerXSpeed float64 `yaml:"player_x_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	WobbleSpeed  float64 `yaml:"wobble_speed"`
	WobbleDist   float64 `yaml:"wobble_dist"`
}

// GameplayConfig defines campaign rules and timing.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	EndingDelay float64 `yaml:"ending_delay"` // Seconds before a finished level is torn down
	MaxStep     float64 `yaml:"max_step"`     // Upper bound on a single step's dt
}

// InputConfig defines keyboard handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a press stays held without key repeat
}

// DisplayConfig defines how the level is drawn.
type DisplayConfig struct {
	TileWidth    int     `yaml:"tile_width"`    // Terminal columns per tile
	ScrollMargin float64 `yaml:"scroll_margin"` // Fraction of the view kept around the player
}

// LevelsConfig selects the level pack.
type LevelsConfig struct {
	Path string `yaml:"path"` // Empty uses the built-in pack
}

// ToPhysics converts the physics section into simulation constants.
func (c PlatformerConfig) ToPhysics() sim.Physics {
	return sim.Physics{
		PlayerXSpeed: c.Physics.PlayerXSpeed,
		Gravity:      c.Physics.Gravity,
		JumpSpeed:    c.Physics.JumpSpeed,
		WobbleSpeed:  c.Physics.WobbleSpeed,
		WobbleDist:   c.Physics.WobbleDist,
	}
}

// Validate reports every out-of-range field.
func (c PlatformerConfig) Validate() error {
	var errs []error
	check := func(ok bool, field string, value any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s: invalid value %v", field, value))
		}
	}

	check(c.Physics.PlayerXSpeed > 0, "physics.player_x_speed", c.Physics.PlayerXSpeed)
	check(c.Physics.Gravity > 0, "physics.gravity", c.Physics.Gravity)
	check(c.Physics.JumpSpeed > 0, "physics.jump_speed", c.Physics.JumpSpeed)
	check(c.Physics.WobbleSpeed >= 0, "physics.wobble_speed", c.Physics.WobbleSpeed)
	check(c.Physics.WobbleDist >= 0 && c.Physics.WobbleDist < 0.5, "physics.wobble_dist", c.Physics.WobbleDist)

	check(c.Gameplay.Lives >= 1, "gameplay.lives", c.Gameplay.Lives)
	check(c.Gameplay.EndingDelay >= 0, "gameplay.ending_delay", c.Gameplay.EndingDelay)
	check(c.Gameplay.MaxStep > 0 && c.Gameplay.MaxStep <= 1, "gameplay.max_step", c.Gameplay.MaxStep)

	check(c.Input.HoldTicks >= 1, "input.hold_ticks", c.Input.HoldTicks)

	check(c.Display.TileWidth >= 1 && c.Display.TileWidth <= 4, "display.tile_width", c.Display.TileWidth)
	check(c.Display.ScrollMargin >= 0 && c.Display.ScrollMargin < 0.5, "display.scroll_margin", c.Display.ScrollMargin)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")
