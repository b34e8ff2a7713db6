package platformer

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// ActorSnapshot is the flattened state of one actor.
type ActorSnapshot struct {
	ID   int
	Kind sim.Kind
	X, Y float64
	VX   float64
	VY   float64
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	LevelIndex  int
	LevelID     string
	Phase       string
	Status      string
	Lives       int
	EndingTicks int
	Paused      bool
	Actors      []ActorSnapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		LevelIndex:  g.levelIndex,
		Phase:       g.phase.String(),
		Status:      g.state.Status.String(),
		Lives:       g.state.Lives,
		EndingTicks: g.endingLeft,
		Paused:      g.paused,
		Actors:      make([]ActorSnapshot, 0, len(g.state.Actors)),
	}
	if g.levelIndex < len(g.levels) {
		snap.LevelID = g.levels[g.levelIndex].ID
	}

	for _, a := range g.state.Actors {
		pos, vel := a.Pos(), a.Velocity()
		snap.Actors = append(snap.Actors, ActorSnapshot{
			ID:   a.ID(),
			Kind: a.Kind(),
			X:    pos.X,
			Y:    pos.Y,
			VX:   vel.X,
			VY:   vel.Y,
		})
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
// Positions are hashed by their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putI := func(v int) { putU(uint64(int64(v))) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putU(snap.Tick)
	putI(snap.LevelIndex)
	_, _ = h.Write([]byte(snap.LevelID))
	_, _ = h.Write([]byte(snap.Phase))
	_, _ = h.Write([]byte(snap.Status))
	putI(snap.Lives)
	putI(snap.EndingTicks)
	if snap.Paused {
		putU(1)
	} else {
		putU(0)
	}

	putI(len(snap.Actors))
	for _, a := range snap.Actors {
		putI(a.ID)
		putU(uint64(a.Kind))
		putF(a.X)
		putF(a.Y)
		putF(a.VX)
		putF(a.VY)
	}

	return h.Sum64()
}
