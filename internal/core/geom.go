// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D point or displacement in tile units.
// It is a pure value: every operation returns a new Vec.
type Vec struct {
	X, Y float64
}

// V creates a Vec from its components.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vec) Plus(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor.
func (v Vec) Times(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Box is an axis-aligned rectangle with a fractional top-left position and size.
type Box struct {
	Pos  Vec
	Size Vec
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Pos.Y + b.Size.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec {
	return b.Pos.Plus(b.Size.Times(0.5))
}

// Overlaps reports whether two boxes intersect on both axes.
// Boxes that only share an edge do not overlap.
func (b Box) Overlaps(other Box) bool {
	return b.Right() > other.Pos.X &&
		b.Pos.X < other.Right() &&
		b.Bottom() > other.Pos.Y &&
		b.Pos.Y < other.Bottom()
}

// TileSpan returns the half-open tile range [x0,x1)×[y0,y1) covered by the box.
func (b Box) TileSpan() (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.Pos.X))
	y0 = int(math.Floor(b.Pos.Y))
	x1 = int(math.Ceil(b.Right()))
	y1 = int(math.Ceil(b.Bottom()))
	return x0, y0, x1, y1
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
