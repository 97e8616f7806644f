package rope

import (
	"errors"
	"fmt"

	"ropewalk/internal/grid"
)

var (
	// ErrParse is the kind of every ParseError.
	ErrParse = errors.New("malformed instruction")
	// ErrPrecondition is returned when a chain is built with fewer than two segments.
	ErrPrecondition = errors.New("precondition violated")
)

// ParseError describes a single malformed instruction line.
type ParseError struct {
	Line   int    // 1-based; 0 when parsing a lone line
	Text   string // the offending line, trimmed
	Reason string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d %q: %s", ErrParse, e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("%s: %q: %s", ErrParse, e.Text, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrParse }

// PreconditionError reports a chain length below the minimum of two.
type PreconditionError struct {
	Segments int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: chain needs at least 2 segments, got %d", ErrPrecondition, e.Segments)
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// InvariantViolation is the panic value raised when the follow pass finds a
// segment further from its leader than a single unit step can produce. It
// signals a defect in the simulator, not bad input.
type InvariantViolation struct {
	Segment  int
	Leader   grid.Point
	Follower grid.Point
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("rope invariant violated: segment %d at %v is %d from leader at %v",
		e.Segment, e.Follower, grid.Chebyshev(e.Leader, e.Follower), e.Leader)
}
