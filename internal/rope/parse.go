package rope

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ropewalk/internal/grid"
)

// Instruction moves the head Count unit steps in Direction.
type Instruction struct {
	Direction grid.Direction
	Count     int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s %d", in.Direction, in.Count)
}

// Parser turns a movement log into instructions. The zero value rejects
// zero-count lines.
type Parser struct {
	// AllowZeroCount accepts "R 0" style lines as no-op instructions.
	AllowZeroCount bool
}

// Parse reads one instruction per non-blank line. Lines may be of any
// length. Nothing is returned when any line is malformed.
func (p Parser) Parse(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, fmt.Errorf("failed to read instructions: %w", readErr)
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		if line := strings.TrimSpace(raw); line != "" {
			in, err := p.ParseLine(line)
			if err != nil {
				if pe, ok := err.(*ParseError); ok {
					pe.Line = lineNo
				}
				return nil, err
			}
			out = append(out, in)
		}
		if readErr == io.EOF {
			break
		}
	}
	return out, nil
}

// ParseString is Parse over an in-memory log.
func (p Parser) ParseString(text string) ([]Instruction, error) {
	return p.Parse(strings.NewReader(text))
}

// ParseLine parses a single "<DIR> <COUNT>" line.
func (p Parser) ParseLine(line string) (Instruction, error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Instruction{}, &ParseError{Text: line, Reason: fmt.Sprintf("expected 2 tokens, got %d", len(fields))}
	}

	dir, ok := grid.ParseDirection(fields[0])
	if !ok {
		return Instruction{}, &ParseError{Text: line, Reason: fmt.Sprintf("unknown direction %q", fields[0])}
	}

	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return Instruction{}, &ParseError{Text: line, Reason: fmt.Sprintf("invalid count %q", fields[1])}
	}
	if count < 0 {
		return Instruction{}, &ParseError{Text: line, Reason: "count must not be negative"}
	}
	if count == 0 && !p.AllowZeroCount {
		return Instruction{}, &ParseError{Text: line, Reason: "count must be positive"}
	}

	return Instruction{Direction: dir, Count: count}, nil
}

// ParseInstructions parses text with the default Parser.
func ParseInstructions(text string) ([]Instruction, error) {
	return Parser{}.ParseString(text)
}
