package sim

// Physics holds the tuning constants of the simulation.
// Speeds are in tiles per second, gravity in tiles per second squared.
type Physics struct {
	PlayerXSpeed float64
	Gravity      float64
	JumpSpeed    float64
	WobbleSpeed  float64
	WobbleDist   float64
}

// DefaultPhysics returns the reference constants.
func DefaultPhysics() Physics {
	return Physics{
		PlayerXSpeed: 7,
		Gravity:      30,
		JumpSpeed:    17,
		WobbleSpeed:  8,
		WobbleDist:   0.07,
	}
}
