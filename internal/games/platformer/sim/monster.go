package sim

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var monsterSize = core.V(1.2, 2)

// Monster patrols along one axis and turns around at walls.
type Monster struct {
	id    int
	pos   core.Vec
	speed core.Vec
}

// newMonster spawns a two-tile-tall monster whose feet rest on its cell.
func newMonster(id int, cell core.Vec, _ rune, _ *rand.Rand) Actor {
	return Monster{id: id, pos: cell.Plus(core.V(0, -1)), speed: core.V(-1, 0)}
}

func (m Monster) ID() int            { return m.id }
func (m Monster) Kind() Kind         { return KindMonster }
func (m Monster) Pos() core.Vec      { return m.pos }
func (m Monster) Size() core.Vec     { return monsterSize }
func (m Monster) Velocity() core.Vec { return m.speed }
func (Monster) sealed()              {}

// Update moves the monster, or reverses it in place when a wall is ahead.
func (m Monster) Update(dt float64, s State, _ Keys) Actor {
	newPos := m.pos.Plus(m.speed.Times(dt))
	if s.Level.Touches(newPos, monsterSize, TileWall) {
		return Monster{id: m.id, pos: m.pos, speed: m.speed.Times(-1)}
	}
	return Monster{id: m.id, pos: newPos, speed: m.speed}
}

// Collide squashes the monster when the player's feet are strictly above the
// monster's feet. Any other contact loses the level.
func (m Monster) Collide(s State) State {
	player, ok := s.Player()
	if ok && BoxOf(player).Bottom() < BoxOf(m).Bottom() {
		return s.without(m.id)
	}
	return s.lose()
}
