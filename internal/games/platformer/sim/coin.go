package sim

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var coinSize = core.V(0.6, 0.6)

// Coin is a collectible that bobs in place. Collecting the last coin wins.
type Coin struct {
	id     int
	pos    core.Vec
	base   core.Vec
	wobble float64
	speed  float64 // Phase velocity in radians per second
}

func newCoin(id int, cell core.Vec, _ rune, rng *rand.Rand) Actor {
	base := cell.Plus(core.V(0.2, 0.1))
	return Coin{
		id:     id,
		pos:    base,
		base:   base,
		wobble: rng.Float64() * 2 * math.Pi,
		speed:  DefaultPhysics().WobbleSpeed,
	}
}

func (c Coin) ID() int        { return c.id }
func (c Coin) Kind() Kind     { return KindCoin }
func (c Coin) Pos() core.Vec  { return c.pos }
func (c Coin) Size() core.Vec { return coinSize }
func (Coin) sealed()          {}

// Velocity returns the wobble phase velocity on the Y axis. Coins never
// translate.
func (c Coin) Velocity() core.Vec {
	return core.V(0, c.speed)
}

// BasePos returns the rest position the coin bobs around.
func (c Coin) BasePos() core.Vec {
	return c.base
}

// Phase returns the current wobble phase in radians.
func (c Coin) Phase() float64 {
	return c.wobble
}

// Update advances the wobble phase. Coins ignore walls.
func (c Coin) Update(dt float64, s State, _ Keys) Actor {
	phys := s.Physics()
	wobble := c.wobble + dt*phys.WobbleSpeed
	offset := math.Sin(wobble) * phys.WobbleDist
	return Coin{
		id:     c.id,
		pos:    c.base.Plus(core.V(0, offset)),
		base:   c.base,
		wobble: wobble,
		speed:  phys.WobbleSpeed,
	}
}

// Collide removes the coin and wins when no coins remain.
func (c Coin) Collide(s State) State {
	next := s.without(c.id)
	for _, a := range next.Actors {
		if a.Kind() == KindCoin {
			return next
		}
	}
	next.Status = StatusWon
	return next
}
