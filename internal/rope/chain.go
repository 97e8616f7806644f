// Package rope simulates a chain of grid points dragged by its head.
//
// Every segment must stay within Chebyshev distance 1 of the segment before
// it. After each unit move of the head, a follow pass walks the chain from
// head to tail and moves any segment that lost contact one step towards its
// leader, clamping each axis to {-1, 0, +1}. The pass must run strictly in
// leader-to-follower order: a follower reacts to its leader's new position.
package rope

import (
	"slices"

	"ropewalk/internal/grid"
)

// Chain is an ordered sequence of segments, index 0 is the head and the last
// index is the tail. A Chain is not safe for concurrent use.
type Chain struct {
	segments []grid.Point
	visited  map[grid.Point]struct{}
}

// NewChain returns a chain of n segments stacked on the origin.
func NewChain(n int) (*Chain, error) {
	if n < 2 {
		return nil, &PreconditionError{Segments: n}
	}
	return &Chain{
		segments: make([]grid.Point, n),
		visited:  map[grid.Point]struct{}{grid.Origin: {}},
	}, nil
}

// Apply runs in.Count unit steps.
func (c *Chain) Apply(in Instruction) {
	for range in.Count {
		c.Step(in.Direction)
	}
}

// Step moves the head one unit, runs the follow pass and records the tail.
func (c *Chain) Step(d grid.Direction) {
	c.segments[0] = c.segments[0].Add(d.Delta())
	c.follow()
	c.visited[c.Tail()] = struct{}{}
}

func (c *Chain) follow() {
	for i := 1; i < len(c.segments); i++ {
		leader, follower := c.segments[i-1], c.segments[i]
		d := leader.Sub(follower)
		if grid.Abs(d.X) <= 1 && grid.Abs(d.Y) <= 1 {
			// Once a segment stays put nothing behind it can move either.
			return
		}
		if grid.Abs(d.X) > 2 || grid.Abs(d.Y) > 2 {
			panic(&InvariantViolation{Segment: i, Leader: leader, Follower: follower})
		}
		c.segments[i] = follower.Add(grid.Point{X: grid.Sign(d.X), Y: grid.Sign(d.Y)})
	}
}

// VisitedCount is the number of distinct positions the tail has occupied,
// including the origin.
func (c *Chain) VisitedCount() int {
	return len(c.visited)
}

// Len is the number of segments.
func (c *Chain) Len() int { return len(c.segments) }

// Head returns the position of segment 0.
func (c *Chain) Head() grid.Point { return c.segments[0] }

// Tail returns the position of the last segment.
func (c *Chain) Tail() grid.Point { return c.segments[len(c.segments)-1] }

// Segments returns a copy of all segment positions, head first.
func (c *Chain) Segments() []grid.Point {
	return slices.Clone(c.segments)
}

// Visited returns the tail's visited positions ordered by row then column.
func (c *Chain) Visited() []grid.Point {
	out := make([]grid.Point, 0, len(c.visited))
	for p := range c.visited {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b grid.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// Simulate builds an n-segment chain, applies every instruction and returns
// the tail's visited count.
func Simulate(instructions []Instruction, n int) (int, error) {
	c, err := NewChain(n)
	if err != nil {
		return 0, err
	}
	for _, in := range instructions {
		c.Apply(in)
	}
	return c.VisitedCount(), nil
}
