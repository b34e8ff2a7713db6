package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

func TestStart(t *testing.T) {
	lvl := mustParse(t, samplePlan)
	s := sim.Start(lvl)

	assert.Equal(t, sim.StatusPlaying, s.Status)
	assert.Equal(t, sim.DefaultLives, s.Lives)
	assert.Equal(t, lvl.StartActors(), s.Actors)
	assert.Equal(t, sim.DefaultPhysics(), s.Physics())

	p, ok := s.Player()
	require.True(t, ok)
	assert.Equal(t, sim.KindPlayer, p.Kind())
	assert.Equal(t, 2, s.Count(sim.KindCoin))
}

func TestSampleLevelRunRightEndsInLava(t *testing.T) {
	s := sim.Start(mustParse(t, samplePlan))
	keys := sim.Keys{sim.KeyRight: true}

	for range 200 {
		s = s.Update(0.05, keys)
		if s.Status != sim.StatusPlaying {
			break
		}
	}

	assert.Equal(t, sim.StatusLost, s.Status)
	assert.Equal(t, sim.DefaultLives-1, s.Lives)
	assert.Equal(t, 2, s.Count(sim.KindCoin))
}

func TestUpdateLeavesEarlierStateIntact(t *testing.T) {
	s := sim.Start(mustParse(t, samplePlan))
	before := make([]sim.Actor, len(s.Actors))
	copy(before, s.Actors)

	next := s.Update(0.05, sim.Keys{sim.KeyRight: true})

	assert.Equal(t, before, s.Actors)
	assert.NotEqual(t, s.Actors, next.Actors)
	assert.Equal(t, sim.StatusPlaying, s.Status)
}

func TestUpdateZeroDt(t *testing.T) {
	s := sim.Start(mustParse(t, `
.......
.@..=.#
.....M.
#######`))

	next := s.Update(0, nil)
	require.Len(t, next.Actors, len(s.Actors))
	for i, a := range next.Actors {
		assert.Equal(t, s.Actors[i].Pos(), a.Pos(), "actor %d", i)
		assert.Equal(t, s.Actors[i].Kind(), a.Kind())
	}
	assert.Equal(t, sim.StatusPlaying, next.Status)
	assert.Equal(t, s.Lives, next.Lives)
}

func TestUpdateDeterministic(t *testing.T) {
	lvl := mustParse(t, samplePlan)
	keys := []sim.Keys{
		{sim.KeyRight: true},
		{sim.KeyRight: true, sim.KeyUp: true},
		nil,
		{sim.KeyLeft: true},
	}

	run := func() sim.State {
		s := sim.Start(lvl)
		for i := range 60 {
			s = s.Update(1.0/60, keys[i%len(keys)])
		}
		return s
	}

	assert.Equal(t, run(), run())
}

func TestTerminalStateOnlyAnimates(t *testing.T) {
	s := sim.Start(mustParse(t, `
..........
.@o...=...
##########`))
	coin := find(t, s, sim.KindCoin).(sim.Collider)
	won := coin.Collide(s)
	require.Equal(t, sim.StatusWon, won.Status)

	// Drive the player into the lava actor; the result stays won
	next := won
	for range 40 {
		next = next.Update(0.05, sim.Keys{sim.KeyRight: true})
	}
	assert.Equal(t, sim.StatusWon, next.Status)
	assert.Equal(t, won.Lives, next.Lives)

	p, ok := next.Player()
	require.True(t, ok)
	wp, _ := won.Player()
	assert.Greater(t, p.Pos().X, wp.Pos().X)
}

func TestUpdateCollectsCoin(t *testing.T) {
	s := sim.Start(mustParse(t, `
......
.@o.o.
######`))

	next := s.Update(0.1, sim.Keys{sim.KeyRight: true})
	assert.Equal(t, sim.StatusPlaying, next.Status)
	assert.Equal(t, 1, next.Count(sim.KindCoin))

	s = sim.Start(mustParse(t, `
......
.@o...
######`))
	next = s.Update(0.1, sim.Keys{sim.KeyRight: true})
	assert.Equal(t, sim.StatusWon, next.Status)
	assert.Zero(t, next.Count(sim.KindCoin))
}

func TestCollisionsRunInSpawnOrder(t *testing.T) {
	// The coin spawns before the lava: it is collected, then the lava loses
	s := sim.Start(mustParse(t, `
.o..
=@..
####`))
	next := s.Update(0.1, nil)
	assert.Equal(t, sim.StatusLost, next.Status)
	assert.Equal(t, sim.DefaultLives-1, next.Lives)
	assert.Zero(t, next.Count(sim.KindCoin))

	// The lava spawns before the coin: the coin response sees the lost state
	// and its win overrides it
	s = sim.Start(mustParse(t, `
....
=@..
.o..
####`))
	next = s.Update(0.1, nil)
	assert.Equal(t, sim.StatusWon, next.Status)
	assert.Equal(t, sim.DefaultLives-1, next.Lives)
	assert.Zero(t, next.Count(sim.KindCoin))

	// A coin out of reach is left alone
	s = sim.Start(mustParse(t, `
....
=@o.
####`))
	next = s.Update(0.1, nil)
	assert.Equal(t, sim.StatusLost, next.Status)
	assert.Equal(t, 1, next.Count(sim.KindCoin))
}

func TestLavaTileBeatsActorContact(t *testing.T) {
	s := sim.Start(mustParse(t, `
...
.@.
.o.
.+.
###`))

	// One long step drops the player onto the coin and into the lava row
	next := s.Update(0.2, nil)
	p, ok := next.Player()
	require.True(t, ok)
	require.True(t, sim.Overlap(p, find(t, s, sim.KindCoin)))
	assert.Equal(t, sim.StatusLost, next.Status)
	assert.Equal(t, sim.DefaultLives-1, next.Lives)
	// The coin was not collected
	assert.Equal(t, 1, next.Count(sim.KindCoin))
}

func TestUpdateSquashesMonsterFromAbove(t *testing.T) {
	s := sim.Start(mustParse(t, `
.....
..@..
.....
.....
..M..
#####`))

	next := s
	for range 200 {
		next = next.Update(0.02, nil)
		if next.Count(sim.KindMonster) == 0 || next.Status != sim.StatusPlaying {
			break
		}
	}
	assert.Equal(t, sim.StatusPlaying, next.Status)
	assert.Zero(t, next.Count(sim.KindMonster))
	assert.Equal(t, sim.DefaultLives, next.Lives)
}

func TestWithPhysics(t *testing.T) {
	s := sim.Start(mustParse(t, `
.....
..@..
#####`))
	phys := sim.DefaultPhysics()
	phys.PlayerXSpeed = 10
	s = s.WithPhysics(phys)

	before, _ := s.Player()
	next := s.Update(0.1, sim.Keys{sim.KeyRight: true})
	after, _ := next.Player()

	assert.InDelta(t, before.Pos().X+1, after.Pos().X, 1e-9)
	assert.Equal(t, phys, next.Physics())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "playing", sim.StatusPlaying.String())
	assert.Equal(t, "won", sim.StatusWon.String())
	assert.Equal(t, "lost", sim.StatusLost.String())
}
