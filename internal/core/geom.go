// Package core provides fundamental types shared by the engine, the sandbox
// and the CLI. It contains no external dependencies (especially no Bubble Tea)
// to keep board logic pure and testable.
package core

import "fmt"

// Vec2 is an integer grid coordinate or offset.
// X increases to the right, Y increases downward (screen coordinates).
type Vec2 struct {
	X, Y int
}

// V is a convenience constructor for Vec2.
func V(x, y int) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the componentwise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Neg returns the opposite vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// String returns a string representation of the vector.
func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Common unit steps.
var (
	Left  = Vec2{X: -1}
	Right = Vec2{X: 1}
	Down  = Vec2{Y: 1}
	Up    = Vec2{Y: -1}
)

// Rect represents an axis-aligned rectangle in screen cells.
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

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
