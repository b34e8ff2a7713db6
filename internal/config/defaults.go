package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			PlayerXSpeed: 7,
			Gravity:      30,
			JumpSpeed:    17,
			WobbleSpeed:  8,
			WobbleDist:   0.07,
		},
		Gameplay: GameplayConfig{
			Lives:       3,
			EndingDelay: 0.2,
			MaxStep:     0.1,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Display: DisplayConfig{
			TileWidth:    2,
			ScrollMargin: 0.333,
		},
	}
}
