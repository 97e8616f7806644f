// Package grid provides the integer lattice geometry shared by the rope
// simulator and the renderer.
package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a position on the unbounded 2-D lattice. y grows upwards.
type Point struct {
	X, Y int
}

// Origin is the starting position of every segment.
var Origin = Point{}

// Add returns p displaced by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Chebyshev returns max(|dx|, |dy|) between p and q.
func Chebyshev(p, q Point) int {
	d := p.Sub(q)
	return max(Abs(d.X), Abs(d.Y))
}

// Touching reports whether p and q are at Chebyshev distance <= 1.
func Touching(p, q Point) bool {
	return Chebyshev(p, q) <= 1
}

// Abs returns the absolute value of v.
func Abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Bounds is an inclusive axis-aligned rectangle.
type Bounds struct {
	Min, Max Point
}

// BoundsOf returns the smallest Bounds containing every point. It panics if
// pts is empty.
func BoundsOf(pts ...Point) Bounds {
	b := Bounds{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Width is the number of columns covered by b.
func (b Bounds) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of rows covered by b.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y + 1 }
