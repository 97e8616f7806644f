// Package render draws a rope chain and its tail's footprint as a character
// grid, top row first.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ropewalk/internal/grid"
	"ropewalk/internal/logging"
	"ropewalk/internal/rope"
)

const (
	cellEmpty   = '.'
	cellVisited = '#'
	cellStart   = 's'
	cellHead    = 'H'
	cellTail    = 'T'
	cellFar     = '*' // segments past index 9
)

// Options controls what is drawn and how.
type Options struct {
	// ShowChain draws the segments on top of the visited map.
	ShowChain bool
	// Color styles cells for a terminal.
	Color bool
}

var (
	headStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	segmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	visitedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	emptyStyle   = lipgloss.NewStyle().Faint(true)
)

// Render draws c. The grid covers the origin, every visited point and, when
// ShowChain is set, every segment.
func Render(c *rope.Chain, opts Options) string {
	visited := c.Visited()
	segments := c.Segments()

	pts := append([]grid.Point{grid.Origin}, visited...)
	if opts.ShowChain {
		pts = append(pts, segments...)
	}
	b := grid.BoundsOf(pts...)
	logging.RenderDebug("rendering %dx%d grid for %d segments", b.Width(), b.Height(), len(segments))

	cells := make(map[grid.Point]rune, len(visited)+len(segments)+1)
	for _, p := range visited {
		cells[p] = cellVisited
	}
	cells[grid.Origin] = cellStart
	if opts.ShowChain {
		// Walk tail to head so lower indices overwrite higher ones.
		for i := len(segments) - 1; i >= 0; i-- {
			cells[segments[i]] = segmentRune(i, len(segments))
		}
	}

	var sb strings.Builder
	for y := b.Max.Y; y >= b.Min.Y; y-- {
		for x := b.Min.X; x <= b.Max.X; x++ {
			r, ok := cells[grid.Point{X: x, Y: y}]
			if !ok {
				r = cellEmpty
			}
			if opts.Color {
				sb.WriteString(styleFor(r).Render(string(r)))
			} else {
				sb.WriteRune(r)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func segmentRune(i, n int) rune {
	switch {
	case i == 0:
		return cellHead
	case n == 2:
		return cellTail
	case i <= 9:
		return rune('0' + i)
	}
	return cellFar
}

func styleFor(r rune) lipgloss.Style {
	switch r {
	case cellHead:
		return headStyle
	case cellStart:
		return startStyle
	case cellVisited:
		return visitedStyle
	case cellEmpty:
		return emptyStyle
	}
	return segmentStyle
}

// RenderString parses text, simulates an n-segment chain and renders the
// final state.
func RenderString(text string, n int, parser rope.Parser, opts Options) (string, error) {
	instructions, err := parser.ParseString(text)
	if err != nil {
		return "", err
	}
	c, err := rope.NewChain(n)
	if err != nil {
		return "", err
	}
	for _, in := range instructions {
		c.Apply(in)
	}
	return Render(c, opts), nil
}
