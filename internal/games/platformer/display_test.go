package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// corridor returns a state on a long one-screen-high level with the player
// spawned at column col.
func corridor(t *testing.T, col int) sim.State {
	t.Helper()
	const width = 60
	top := strings.Repeat(".", width)
	mid := []byte(strings.Repeat(".", width))
	mid[col] = '@'
	floor := strings.Repeat("#", width)

	lvl, err := sim.ParseLevel(top + "\n" + top + "\n" + string(mid) + "\n" + floor)
	require.NoError(t, err)
	return sim.Start(lvl)
}

func TestDisplayScrollsToPlayer(t *testing.T) {
	d := NewScreenDisplay(2, 1.0/3)
	d.Resize(40, 12) // 20x11 tiles

	s := corridor(t, 30)
	d.SyncState(s)

	p, _ := s.Player()
	center := sim.BoxOf(p).Center()
	view := d.View()
	margin := 20.0 / 3

	assert.Greater(t, view.X, 0.0)
	assert.InDelta(t, center.X+margin-20, view.X, 1e-9)
	assert.Zero(t, view.Y, "level fits vertically")
}

func TestDisplayClampsToLevelEdge(t *testing.T) {
	d := NewScreenDisplay(2, 1.0/3)
	d.Resize(40, 12)

	d.SyncState(corridor(t, 58))
	assert.InDelta(t, 40.0, d.View().X, 1e-9)

	d.SyncState(corridor(t, 1))
	assert.Zero(t, d.View().X)
}

func TestDisplayKeepsViewInsideMargin(t *testing.T) {
	d := NewScreenDisplay(2, 1.0/3)
	d.Resize(40, 12)

	d.SyncState(corridor(t, 30))
	first := d.View()

	// Moving within the inner area leaves the view alone
	d.SyncState(corridor(t, 28))
	assert.Equal(t, first, d.View())
}

func TestDisplayClear(t *testing.T) {
	d := NewScreenDisplay(2, 1.0/3)
	d.Resize(40, 12)
	d.SyncState(corridor(t, 58))
	require.NotZero(t, d.View().X)

	d.Clear()
	assert.Equal(t, core.Vec{}, d.View())

	screen := core.NewScreen(40, 12)
	d.Draw(screen)
	assert.Equal(t, strings.Repeat(" ", 40), screen.Row(1))
}

func TestDisplayDraw(t *testing.T) {
	lvl, err := sim.ParseLevel("...\n.@.\n###")
	require.NoError(t, err)
	s := sim.Start(lvl)

	d := NewScreenDisplay(2, 1.0/3)
	d.SetCaption("1/1 Test")
	d.SyncState(s)

	screen := core.NewScreen(40, 6)
	d.Draw(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), "1/1 Test"))

	// Player covers columns 2-3 on rows 1-2
	for _, pos := range [][2]int{{2, 1}, {3, 1}, {2, 2}, {3, 2}} {
		assert.Equal(t, core.Cell{Rune: PlayerGlyph, Color: core.ColorBlue}, screen.GetCell(pos[0], pos[1]))
	}
	assert.Equal(t, ' ', screen.Get(4, 1))

	// Floor row, two columns per tile, nothing past the level
	for x := range 6 {
		assert.Equal(t, core.Cell{Rune: WallGlyph, Color: core.ColorGray}, screen.GetCell(x, 3))
	}
	assert.Equal(t, ' ', screen.Get(6, 3))
}

func TestDisplayPlayerColorFollowsStatus(t *testing.T) {
	d := NewScreenDisplay(2, 0)
	p := sim.Player{}

	d.state.Status = sim.StatusLost
	_, c := d.actorStyle(p)
	assert.Equal(t, core.ColorBrightRed, c)

	d.state.Status = sim.StatusWon
	_, c = d.actorStyle(p)
	assert.Equal(t, core.ColorBrightGreen, c)
}
