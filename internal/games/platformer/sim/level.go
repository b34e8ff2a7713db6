// Package sim is the deterministic platformer simulation: the static tile
// grid, the actor variants and the immutable State transition.
//
// Nothing in this package mutates a value after construction. State.Update
// returns a fresh State and every earlier State stays valid.
package sim

import (
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Tile is the static label of a grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileLava
)

// String returns the tile label name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// actorFactory builds an actor for a spawn character at an integer cell.
type actorFactory func(id int, cell core.Vec, ch rune, rng *rand.Rand) Actor

// legendEntry maps a plan character to either a tile or an actor factory.
type legendEntry struct {
	tile    Tile
	factory actorFactory
}

// legend is the fixed character table. Actor cells become TileEmpty.
var legend = map[rune]legendEntry{
	'.': {tile: TileEmpty},
	'#': {tile: TileWall},
	'+': {tile: TileLava},
	'@': {factory: newPlayer},
	'o': {factory: newCoin},
	'=': {factory: newLava},
	'|': {factory: newLava},
	'v': {factory: newLava},
	'M': {factory: newMonster},
}

// Level is the immutable static tile map of one level plus its spawn list.
type Level struct {
	width       int
	height      int
	rows        [][]Tile
	startActors []Actor
}

type parseOptions struct {
	seed int64
}

// ParseOption customizes ParseLevel.
type ParseOption func(*parseOptions)

// WithSeed seeds the coin wobble phases. The default seed is 0.
func WithSeed(seed int64) ParseOption {
	return func(o *parseOptions) {
		o.seed = seed
	}
}

// ParseLevel builds a Level from a text plan.
//
// The plan is trimmed and split into lines of equal width. Every character
// must appear in the legend and the plan must contain exactly one '@'.
// On error no Level is returned.
func ParseLevel(plan string, opts ...ParseOption) (*Level, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	trimmed := strings.TrimSpace(plan)
	if trimmed == "" {
		return nil, &LevelError{Row: -1, Col: -1, Err: ErrEmptyPlan}
	}

	lines := strings.Split(trimmed, "\n")
	//nolint:gosec // seed bits are reinterpreted, sign does not matter
	rng := rand.New(rand.NewPCG(uint64(o.seed), 0))

	lvl := &Level{height: len(lines)}
	players := 0

	for y, line := range lines {
		chars := []rune(strings.TrimRight(line, "\r"))
		if y == 0 {
			lvl.width = len(chars)
		} else if len(chars) != lvl.width {
			return nil, &LevelError{Row: y, Col: -1, Err: ErrRaggedRow}
		}

		row := make([]Tile, len(chars))
		for x, ch := range chars {
			entry, ok := legend[ch]
			if !ok {
				return nil, &LevelError{Row: y, Col: x, Char: ch, Err: ErrUnknownChar}
			}
			if entry.factory == nil {
				row[x] = entry.tile
				continue
			}
			if ch == '@' {
				players++
				if players > 1 {
					return nil, &LevelError{Row: y, Col: x, Err: ErrMultiplePlayers}
				}
			}
			actor := entry.factory(len(lvl.startActors), core.V(float64(x), float64(y)), ch, rng)
			lvl.startActors = append(lvl.startActors, actor)
			row[x] = TileEmpty
		}
		lvl.rows = append(lvl.rows, row)
	}

	if players == 0 {
		return nil, &LevelError{Row: -1, Col: -1, Err: ErrNoPlayer}
	}
	return lvl, nil
}

// Width returns the level width in tiles.
func (l *Level) Width() int {
	return l.width
}

// Height returns the level height in tiles.
func (l *Level) Height() int {
	return l.height
}

// At returns the tile at (x, y). Cells outside the grid are walls.
func (l *Level) At(x, y int) Tile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return TileWall
	}
	return l.rows[y][x]
}

// StartActors returns a copy of the actors spawned by the plan, in spawn order.
func (l *Level) StartActors() []Actor {
	out := make([]Actor, len(l.startActors))
	copy(out, l.startActors)
	return out
}

// Touches reports whether the box at pos with the given size covers any
// tile with the given label. The covered range is floor(pos) up to
// ceil(pos+size), exclusive, on each axis.
func (l *Level) Touches(pos, size core.Vec, label Tile) bool {
	x0, y0, x1, y1 := core.Box{Pos: pos, Size: size}.TileSpan()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if l.At(x, y) == label {
				return true
			}
		}
	}
	return false
}
