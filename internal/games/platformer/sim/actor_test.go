package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// find returns the first start actor of the given kind.
func find(t *testing.T, s sim.State, k sim.Kind) sim.Actor {
	t.Helper()
	for _, a := range s.Actors {
		if a.Kind() == k {
			return a
		}
	}
	require.FailNow(t, "actor not found", "kind %s", k)
	return nil
}

func TestOverlapIsSymmetricAndStrict(t *testing.T) {
	s := sim.Start(mustParse(t, `
.....
.@o..
#####`))

	player := find(t, s, sim.KindPlayer)
	coin := find(t, s, sim.KindCoin)

	assert.Equal(t, sim.Overlap(player, coin), sim.Overlap(coin, player))
	assert.True(t, sim.Overlap(player, player))
	assert.True(t, sim.Overlap(coin, coin))

	// Player spans x [1, 1.8); coin starts at 2.2
	assert.False(t, sim.Overlap(player, coin))
}

func TestPlayerStandsStill(t *testing.T) {
	s := sim.Start(mustParse(t, `
...
.@.
###`))

	p := find(t, s, sim.KindPlayer)
	next := p.Update(0.05, s, nil)

	assert.Equal(t, p.Pos(), next.Pos())
	assert.Equal(t, core.V(0, 0), next.Velocity())
}

func TestPlayerJumpsOnlyFromGround(t *testing.T) {
	s := sim.Start(mustParse(t, `
...
...
.@.
###`))
	p := find(t, s, sim.KindPlayer)

	jumped := p.Update(0.05, s, sim.Keys{sim.KeyUp: true})
	assert.InDelta(t, -17.0, jumped.Velocity().Y, 1e-9)
	assert.Equal(t, p.Pos(), jumped.Pos())

	landed := p.Update(0.05, s, nil)
	assert.Zero(t, landed.Velocity().Y)

	// Airborne: ArrowUp has no effect and gravity accumulates
	air := jumped.Update(0.05, s, sim.Keys{sim.KeyUp: true})
	assert.InDelta(t, -17.0+0.05*30, air.Velocity().Y, 1e-9)
	assert.Less(t, air.Pos().Y, p.Pos().Y)
}

func TestPlayerHorizontalMovement(t *testing.T) {
	s := sim.Start(mustParse(t, `
.....
..@..
#####`))
	p := find(t, s, sim.KindPlayer)

	right := p.Update(0.1, s, sim.Keys{sim.KeyRight: true})
	assert.InDelta(t, p.Pos().X+0.7, right.Pos().X, 1e-9)
	assert.InDelta(t, 7.0, right.Velocity().X, 1e-9)

	left := p.Update(0.1, s, sim.Keys{sim.KeyLeft: true})
	assert.InDelta(t, p.Pos().X-0.7, left.Pos().X, 1e-9)

	both := p.Update(0.1, s, sim.Keys{sim.KeyLeft: true, sim.KeyRight: true})
	assert.Equal(t, p.Pos(), both.Pos())
	assert.Zero(t, both.Velocity().X)
}

func TestPlayerBlockedByWall(t *testing.T) {
	s := sim.Start(mustParse(t, `
#..
#@.
###`))
	p := find(t, s, sim.KindPlayer)

	moved := p.Update(0.1, s, sim.Keys{sim.KeyLeft: true})
	assert.Equal(t, p.Pos(), moved.Pos())
	// Horizontal speed still reports the intent
	assert.InDelta(t, -7.0, moved.Velocity().X, 1e-9)
}

func TestPlayerFalls(t *testing.T) {
	s := sim.Start(mustParse(t, `
...
.@.
...
...
###`))
	p := find(t, s, sim.KindPlayer)

	next := p.Update(0.1, s, nil)
	assert.InDelta(t, 3.0, next.Velocity().Y, 1e-9)
	assert.InDelta(t, p.Pos().Y+0.3, next.Pos().Y, 1e-9)
}

func TestHorizontalLavaBouncesWithoutAdvancing(t *testing.T) {
	s := sim.Start(mustParse(t, `
.....
.=#..
.....
.@...
#####`))
	lava := find(t, s, sim.KindLava)

	next := lava.Update(0.1, s, nil)
	assert.Equal(t, core.V(1, 1), next.Pos())
	assert.Equal(t, core.V(-2, 0), next.Velocity())

	// Now moving left into open space
	after := next.Update(0.1, s, nil)
	assert.InDelta(t, 0.8, after.Pos().X, 1e-9)
	assert.Equal(t, core.V(-2, 0), after.Velocity())
}

func TestVerticalLavaBounces(t *testing.T) {
	s := sim.Start(mustParse(t, `
.|...
.....
#####
.@...
#####`))
	lava := find(t, s, sim.KindLava)

	a := lava
	for range 10 {
		a = a.Update(0.1, s, nil)
		if a.Velocity().Y < 0 {
			break
		}
	}
	assert.Equal(t, core.V(0, -2), a.Velocity())
	assert.LessOrEqual(t, a.Pos().Y+1, 2.0)
}

func TestDrippingLavaResets(t *testing.T) {
	s := sim.Start(mustParse(t, `
..v..
.....
#####
.@...
#####`))
	lava := find(t, s, sim.KindLava)

	a := lava
	for range 3 {
		a = a.Update(0.1, s, nil)
	}
	assert.InDelta(t, 0.9, a.Pos().Y, 1e-9)

	a = a.Update(0.1, s, nil)
	assert.Equal(t, core.V(2, 0), a.Pos())
	assert.Equal(t, core.V(0, 3), a.Velocity())
}

func TestCoinWobbles(t *testing.T) {
	s := sim.Start(mustParse(t, `
.....
.@o..
#####`))
	coin := find(t, s, sim.KindCoin).(sim.Coin)

	next := coin.Update(0.1, s, nil).(sim.Coin)
	wantPhase := coin.Phase() + 0.8
	assert.InDelta(t, wantPhase, next.Phase(), 1e-9)
	assert.Equal(t, coin.BasePos(), next.BasePos())
	assert.InDelta(t, coin.BasePos().Y+math.Sin(wantPhase)*0.07, next.Pos().Y, 1e-9)
	assert.Equal(t, coin.BasePos().X, next.Pos().X)
	assert.Equal(t, core.V(0, 8), coin.Velocity())
	assert.Equal(t, core.V(0, 8), next.Velocity())

	phys := sim.DefaultPhysics()
	phys.WobbleSpeed = 4
	slow := coin.Update(0.1, s.WithPhysics(phys), nil).(sim.Coin)
	assert.Equal(t, core.V(0, 4), slow.Velocity())
	assert.InDelta(t, coin.Phase()+0.4, slow.Phase(), 1e-9)
}

func TestCoinCollide(t *testing.T) {
	t.Run("last coin wins", func(t *testing.T) {
		s := sim.Start(mustParse(t, `
.....
.@o..
#####`))
		coin := find(t, s, sim.KindCoin).(sim.Collider)

		next := coin.Collide(s)
		assert.Equal(t, sim.StatusWon, next.Status)
		assert.Zero(t, next.Count(sim.KindCoin))
		assert.Equal(t, sim.DefaultLives, next.Lives)
	})

	t.Run("remaining coins keep playing", func(t *testing.T) {
		s := sim.Start(mustParse(t, `
.....
.@o.o
#####`))
		coin := find(t, s, sim.KindCoin).(sim.Collider)

		next := coin.Collide(s)
		assert.Equal(t, sim.StatusPlaying, next.Status)
		assert.Equal(t, 1, next.Count(sim.KindCoin))
		// The original state is untouched
		assert.Equal(t, 2, s.Count(sim.KindCoin))
	})
}

func TestLavaCollideLoses(t *testing.T) {
	s := sim.StartWithLives(mustParse(t, `
.....
.@=..
#####`), 5)
	lava := find(t, s, sim.KindLava).(sim.Collider)

	next := lava.Collide(s)
	assert.Equal(t, sim.StatusLost, next.Status)
	assert.Equal(t, 4, next.Lives)
	assert.Equal(t, 1, next.Count(sim.KindLava))
}

func TestMonsterPatrol(t *testing.T) {
	s := sim.Start(mustParse(t, `
#....
#M.@.
#####`))
	m := find(t, s, sim.KindMonster)
	require.Equal(t, core.V(1, 0), m.Pos())

	turned := m.Update(0.1, s, nil)
	assert.Equal(t, m.Pos(), turned.Pos())
	assert.Equal(t, core.V(1, 0), turned.Velocity())

	moved := turned.Update(0.1, s, nil)
	assert.InDelta(t, 1.1, moved.Pos().X, 1e-9)
	assert.Equal(t, core.V(1, 0), moved.Velocity())
}

func TestMonsterCollide(t *testing.T) {
	t.Run("squashed from above", func(t *testing.T) {
		s := sim.Start(mustParse(t, `
.......
.@.....
.......
....M..
#######`))
		m := find(t, s, sim.KindMonster).(sim.Collider)

		next := m.Collide(s)
		assert.Equal(t, sim.StatusPlaying, next.Status)
		assert.Zero(t, next.Count(sim.KindMonster))
		assert.Equal(t, sim.DefaultLives, next.Lives)
	})

	t.Run("level contact loses", func(t *testing.T) {
		s := sim.Start(mustParse(t, `
.......
.......
.......
..@.M..
#######`))
		m := find(t, s, sim.KindMonster).(sim.Collider)

		next := m.Collide(s)
		assert.Equal(t, sim.StatusLost, next.Status)
		assert.Equal(t, sim.DefaultLives-1, next.Lives)
		assert.Equal(t, 1, next.Count(sim.KindMonster))
	})
}
