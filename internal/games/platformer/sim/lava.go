package sim

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var lavaSize = core.V(1, 1)

// Lava is a moving hazard. Touching it loses the level.
//
// Horizontal ('=') and vertical ('|') lava bounce off walls. Dripping lava
// ('v') jumps back to its spawn cell instead.
type Lava struct {
	id       int
	pos      core.Vec
	speed    core.Vec
	reset    core.Vec
	hasReset bool
}

func newLava(id int, cell core.Vec, ch rune, _ *rand.Rand) Actor {
	switch ch {
	case '=':
		return Lava{id: id, pos: cell, speed: core.V(2, 0)}
	case '|':
		return Lava{id: id, pos: cell, speed: core.V(0, 2)}
	default: // 'v'
		return Lava{id: id, pos: cell, speed: core.V(0, 3), reset: cell, hasReset: true}
	}
}

func (l Lava) ID() int            { return l.id }
func (l Lava) Kind() Kind         { return KindLava }
func (l Lava) Pos() core.Vec      { return l.pos }
func (l Lava) Size() core.Vec     { return lavaSize }
func (l Lava) Velocity() core.Vec { return l.speed }
func (Lava) sealed()              {}

// ResetPos returns the spawn position of dripping lava.
func (l Lava) ResetPos() (core.Vec, bool) {
	return l.reset, l.hasReset
}

// Update advances the lava along its velocity.
func (l Lava) Update(dt float64, s State, _ Keys) Actor {
	newPos := l.pos.Plus(l.speed.Times(dt))
	switch {
	case !s.Level.Touches(newPos, lavaSize, TileWall):
		l.pos = newPos
	case l.hasReset:
		l.pos = l.reset
	default:
		l.speed = l.speed.Times(-1)
	}
	return l
}

// Collide loses the level and costs a life.
func (l Lava) Collide(s State) State {
	return s.lose()
}
