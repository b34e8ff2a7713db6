package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// Display receives every new state and is cleared when a level is torn down.
type Display interface {
	SyncState(s sim.State)
	Clear()
}

// Glyphs used when painting tiles and actors.
const (
	WallGlyph    = '█'
	LavaGlyph    = '▒'
	HazardGlyph  = '▓'
	PlayerGlyph  = '█'
	CoinGlyph    = '●'
	MonsterGlyph = '▆'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// ScreenDisplay paints a scrolling view of the level into a core.Screen.
//
// The view scrolls only when the player's center leaves the inner area that
// excludes margin of the view on each side, and never past the level edges.
type ScreenDisplay struct {
	tileWidth int
	margin    float64

	screenW, screenH int

	// View size in tiles and its top-left corner in level coordinates
	viewW, viewH float64
	left, top    float64

	state   sim.State
	synced  bool
	caption string
}

var _ Display = (*ScreenDisplay)(nil)

// NewScreenDisplay creates a display that draws each tile tileWidth columns
// wide and keeps margin (a fraction of the view) around the player.
func NewScreenDisplay(tileWidth int, margin float64) *ScreenDisplay {
	return &ScreenDisplay{
		tileWidth: max(tileWidth, 1),
		margin:    core.ClampF(margin, 0, 0.49),
	}
}

// Resize sets the screen size the view is computed from.
func (d *ScreenDisplay) Resize(screenW, screenH int) {
	d.screenW, d.screenH = screenW, screenH
	d.viewW = float64(screenW) / float64(d.tileWidth)
	d.viewH = float64(max(screenH-hudRows, 0))
	if d.synced {
		d.scroll()
	}
}

// SetCaption sets the text shown on the left of the HUD line.
func (d *ScreenDisplay) SetCaption(caption string) {
	d.caption = caption
}

// SyncState records the state to paint and scrolls the view to follow the player.
func (d *ScreenDisplay) SyncState(s sim.State) {
	d.state = s
	d.synced = true
	d.scroll()
}

// Clear forgets the current state and resets the view.
func (d *ScreenDisplay) Clear() {
	d.state = sim.State{}
	d.synced = false
	d.left, d.top = 0, 0
}

// View returns the top-left corner of the view in level coordinates.
func (d *ScreenDisplay) View() core.Vec {
	return core.V(d.left, d.top)
}

func (d *ScreenDisplay) scroll() {
	if d.state.Level == nil {
		return
	}
	player, ok := d.state.Player()
	if !ok {
		return
	}
	center := sim.BoxOf(player).Center()
	lw := float64(d.state.Level.Width())
	lh := float64(d.state.Level.Height())

	d.left = follow(d.left, d.viewW, center.X, d.viewW*d.margin, lw)
	d.top = follow(d.top, d.viewH, center.Y, d.viewH*d.margin, lh)
}

// follow moves one view axis so that pos stays at least margin inside it.
func follow(start, size, pos, margin, limit float64) float64 {
	switch {
	case pos < start+margin:
		start = pos - margin
	case pos > start+size-margin:
		start = pos + margin - size
	}
	return core.ClampF(start, 0, math.Max(limit-size, 0))
}

// Draw paints the HUD line and the visible part of the last synced state.
func (d *ScreenDisplay) Draw(dst *core.Screen) {
	if dst.Width() != d.screenW || dst.Height() != d.screenH {
		d.Resize(dst.Width(), dst.Height())
	}

	d.drawHUD(dst)
	if !d.synced || d.state.Level == nil {
		return
	}

	d.drawTiles(dst)
	for _, a := range d.state.Actors {
		d.drawActor(dst, a)
	}
}

func (d *ScreenDisplay) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(0, 0, d.caption, core.ColorBrightWhite)
	if !d.synced {
		return
	}

	lives := strings.Repeat("♥", max(d.state.Lives, 0))
	status := fmt.Sprintf("Coins %d  Lives %s", d.state.Count(sim.KindCoin), lives)
	x := dst.Width() - len([]rune(status))
	dst.DrawTextColored(x, 0, status, core.ColorBrightYellow)
}

func (d *ScreenDisplay) drawTiles(dst *core.Screen) {
	lvl := d.state.Level
	tw := float64(d.tileWidth)

	for sy := hudRows; sy < dst.Height(); sy++ {
		ty := int(math.Floor(d.top + float64(sy-hudRows)))
		for sx := 0; sx < dst.Width(); sx++ {
			tx := int(math.Floor(d.left + float64(sx)/tw))
			if tx >= lvl.Width() || ty >= lvl.Height() {
				continue
			}
			switch lvl.At(tx, ty) {
			case sim.TileWall:
				dst.SetColored(sx, sy, WallGlyph, core.ColorGray)
			case sim.TileLava:
				dst.SetColored(sx, sy, LavaGlyph, core.ColorRed)
			}
		}
	}
}

func (d *ScreenDisplay) drawActor(dst *core.Screen, a sim.Actor) {
	glyph, color := d.actorStyle(a)
	box := sim.BoxOf(a)
	tw := float64(d.tileWidth)

	x0 := int(math.Floor((box.Pos.X - d.left) * tw))
	x1 := int(math.Ceil((box.Right() - d.left) * tw))
	y0 := int(math.Floor(box.Pos.Y-d.top)) + hudRows
	y1 := int(math.Ceil(box.Bottom()-d.top)) + hudRows

	for y := max(y0, hudRows); y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}

func (d *ScreenDisplay) actorStyle(a sim.Actor) (rune, core.Color) {
	switch a.Kind() {
	case sim.KindPlayer:
		switch d.state.Status {
		case sim.StatusLost:
			return PlayerGlyph, core.ColorBrightRed
		case sim.StatusWon:
			return PlayerGlyph, core.ColorBrightGreen
		default:
			return PlayerGlyph, core.ColorBlue
		}
	case sim.KindLava:
		return HazardGlyph, core.ColorOrange
	case sim.KindCoin:
		return CoinGlyph, core.ColorBrightYellow
	case sim.KindMonster:
		return MonsterGlyph, core.ColorMagenta
	default:
		return '?', core.ColorDefault
	}
}
