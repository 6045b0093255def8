// Package geometry provides basic geometric types used by the picker widgets.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul scales each axis of p by the matching dimension of s.
func (p Point2D) Mul(s Size) Point2D {
	return Point2D{X: p.X * s.Width, Y: p.Y * s.Height}
}

// Clamp returns p with both coordinates clamped to [0,1].
func (p Point2D) Clamp() Point2D {
	return Point2D{X: Clamp01(p.X), Y: Clamp01(p.Y)}
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool {
	return !(s.Width > 0) || !(s.Height > 0)
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize returns the rectangle at the origin covering s.
func RectFromSize(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Contains returns true if the point is inside the rectangle, edges included.
// Empty rectangles contain nothing.
func (r Rect) Contains(p Point2D) bool {
	if !(r.Width > 0) || !(r.Height > 0) {
		return false
	}
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Clamp01 clamps v to [0,1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Normalize converts a local position into a normalized coordinate in [0,1]
// on each axis. An axis with no extent normalizes to 0.
func Normalize(p Point2D, s Size) Point2D {
	var out Point2D
	if s.Width > 0 {
		out.X = Clamp01(p.X / s.Width)
	}
	if s.Height > 0 {
		out.Y = Clamp01(p.Y / s.Height)
	}
	return out
}
