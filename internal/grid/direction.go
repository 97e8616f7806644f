package grid

import "fmt"

// Direction is one of the four cardinal moves of the head.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

var deltas = map[Direction]Point{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

var letters = map[Direction]string{
	Up:    "U",
	Down:  "D",
	Left:  "L",
	Right: "R",
}

// Delta returns the unit displacement for d. The zero Direction has no
// displacement.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	_, ok := deltas[d]
	return ok
}

func (d Direction) String() string {
	if s, ok := letters[d]; ok {
		return s
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps the letters U, D, L and R to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "U":
		return Up, true
	case "D":
		return Down, true
	case "L":
		return Left, true
	case "R":
		return Right, true
	}
	return 0, false
}
