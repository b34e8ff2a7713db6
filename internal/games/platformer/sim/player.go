package sim

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var playerSize = core.V(0.8, 1.5)

// Player is the actor driven by keyboard input.
type Player struct {
	id    int
	pos   core.Vec
	speed core.Vec
}

// newPlayer spawns a player half a tile above its cell so it stands on the
// floor below.
func newPlayer(id int, cell core.Vec, _ rune, _ *rand.Rand) Actor {
	return Player{id: id, pos: cell.Plus(core.V(0, -0.5))}
}

func (p Player) ID() int            { return p.id }
func (p Player) Kind() Kind         { return KindPlayer }
func (p Player) Pos() core.Vec      { return p.pos }
func (p Player) Size() core.Vec     { return playerSize }
func (p Player) Velocity() core.Vec { return p.speed }
func (Player) sealed()              {}

// Update moves the player horizontally from the arrow keys, then applies
// gravity. Each axis is moved separately and reverted when it would enter a
// wall. A jump starts only when falling onto a surface with ArrowUp held.
func (p Player) Update(dt float64, s State, keys Keys) Actor {
	phys := s.Physics()

	xSpeed := 0.0
	if keys[KeyLeft] {
		xSpeed -= phys.PlayerXSpeed
	}
	if keys[KeyRight] {
		xSpeed += phys.PlayerXSpeed
	}

	pos := p.pos
	movedX := pos.Plus(core.V(xSpeed*dt, 0))
	if !s.Level.Touches(movedX, playerSize, TileWall) {
		pos = movedX
	}

	ySpeed := p.speed.Y + dt*phys.Gravity
	movedY := pos.Plus(core.V(0, ySpeed*dt))
	switch {
	case !s.Level.Touches(movedY, playerSize, TileWall):
		pos = movedY
	case keys[KeyUp] && ySpeed > 0:
		ySpeed = -phys.JumpSpeed
	default:
		ySpeed = 0
	}

	return Player{id: p.id, pos: pos, speed: core.V(xSpeed, ySpeed)}
}
