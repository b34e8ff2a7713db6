package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// Key names understood by the player update.
const (
	KeyLeft  = "ArrowLeft"
	KeyRight = "ArrowRight"
	KeyUp    = "ArrowUp"
)

// Keys is a read-only snapshot of pressed keys for one step.
// A nil Keys means nothing is pressed.
type Keys map[string]bool

// Kind identifies an actor variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindLava
	KindCoin
	KindMonster
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindLava:
		return "lava"
	case KindCoin:
		return "coin"
	case KindMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Actor is a dynamic entity occupying a box. The set of implementations is
// closed: Player, Lava, Coin and Monster.
type Actor interface {
	// ID is the spawn index assigned at parse time. It identifies the actor
	// across updates.
	ID() int
	Kind() Kind
	Pos() core.Vec
	Size() core.Vec
	Velocity() core.Vec

	// Update returns the actor advanced by dt seconds. It reads s, the state
	// before the step, and never modifies it.
	Update(dt float64, s State, keys Keys) Actor

	sealed()
}

// Collider is implemented by actors that react to overlapping the player.
type Collider interface {
	Actor

	// Collide returns the state after this actor touched the player.
	Collide(s State) State
}

// BoxOf returns the bounding box of an actor.
func BoxOf(a Actor) core.Box {
	return core.Box{Pos: a.Pos(), Size: a.Size()}
}

// Overlap reports whether two actors' boxes strictly intersect.
func Overlap(a, b Actor) bool {
	return BoxOf(a).Overlaps(BoxOf(b))
}
