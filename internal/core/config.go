package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Status   string // Outcome of the current level: "playing", "won" or "lost"
	Lives    int    // Lives left in the campaign
	Level    int    // Zero-based index of the current level
	Levels   int    // Number of levels in the campaign
	GameOver bool   // Whether the campaign has ended (out of lives or completed)
	Won      bool   // Whether the campaign ended with every level cleared
	Paused   bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// LevelEnded is set on the tick a finished level is torn down.
	LevelEnded bool
}
