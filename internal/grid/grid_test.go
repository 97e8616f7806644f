package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want int
	}{
		{"same", Point{}, Point{}, 0},
		{"axis", Point{X: 2}, Point{}, 2},
		{"diagonal", Point{X: 1, Y: 1}, Point{}, 1},
		{"knight", Point{X: 2, Y: 1}, Point{}, 2},
		{"negative", Point{X: -3, Y: 1}, Point{X: 1, Y: 2}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chebyshev(tt.p, tt.q))
			assert.Equal(t, tt.want, Chebyshev(tt.q, tt.p))
		})
	}
}

func TestTouching(t *testing.T) {
	assert.True(t, Touching(Point{}, Point{X: 1, Y: -1}))
	assert.False(t, Touching(Point{}, Point{X: 0, Y: 2}))
}

func TestSignAbs(t *testing.T) {
	assert.Equal(t, -1, Sign(-7))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(2))
	assert.Equal(t, int64(5), Abs(int64(-5)))
	assert.Equal(t, 3, Abs(3))
}

func TestDirectionDelta(t *testing.T) {
	assert.Equal(t, Point{X: 0, Y: 1}, Up.Delta())
	assert.Equal(t, Point{X: 0, Y: -1}, Down.Delta())
	assert.Equal(t, Point{X: -1, Y: 0}, Left.Delta())
	assert.Equal(t, Point{X: 1, Y: 0}, Right.Delta())
	assert.Equal(t, Point{}, Direction(0).Delta())
	assert.False(t, Direction(0).Valid())
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDirection("Q")
	assert.False(t, ok)
	_, ok = ParseDirection("u")
	assert.False(t, ok)
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Point{X: 1, Y: 2}, Point{X: -3, Y: 0}, Point{X: 4, Y: -1})
	assert.Equal(t, Bounds{Min: Point{X: -3, Y: -1}, Max: Point{X: 4, Y: 2}}, b)
	assert.Equal(t, 8, b.Width())
	assert.Equal(t, 4, b.Height())
}
