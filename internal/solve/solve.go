// Package solve runs the rope simulation over puzzle inputs, one answer per
// configured chain length.
package solve

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ropewalk/internal/logging"
	"ropewalk/internal/rope"
)

// DefaultParts are the chain lengths of the two puzzle parts.
var DefaultParts = []int{2, 10}

// slowPartThreshold is the per-part duration above which the sim category
// logs a warning.
const slowPartThreshold = time.Second

// Answer is the visited count for one chain length.
type Answer struct {
	Segments int
	Visited  int
}

// Result holds every answer for one input.
type Result struct {
	Name    string
	RunID   string
	Answers []Answer
}

// Solver simulates each input once per entry in Parts.
type Solver struct {
	Parts  []int
	Parser rope.Parser
	Logger *zap.Logger
	// Stdin is read for the path "-".
	Stdin io.Reader
}

// New returns a Solver for the given chain lengths. Empty parts means
// DefaultParts; a nil logger is replaced by a no-op logger.
func New(parts []int, parser rope.Parser, logger *zap.Logger) *Solver {
	if len(parts) == 0 {
		parts = DefaultParts
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{Parts: parts, Parser: parser, Logger: logger, Stdin: os.Stdin}
}

// SolveInput parses r and runs one simulation per part. ctx is checked
// between parts.
func (s *Solver) SolveInput(ctx context.Context, name string, r io.Reader) (Result, error) {
	runID := uuid.NewString()
	log := s.Logger.With(zap.String("input", name), zap.String("run_id", runID))
	catLog := logging.WithRunID(logging.CategorySolve, runID)

	logging.SolveDebug("%s: solving parts %v", name, s.Parts)

	instructions, err := s.Parser.Parse(r)
	if err != nil {
		log.Error("parse failed", zap.Error(err))
		logging.Parse("%s: rejected: %v", name, err)
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}
	logging.ParseDebug("%s: parsed %d instructions", name, len(instructions))

	res := Result{Name: name, RunID: runID}
	for _, n := range s.Parts {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		logging.SimDebug("%s: simulating %d instructions with N=%d", name, len(instructions), n)
		timer := logging.StartTimer(logging.CategorySim, fmt.Sprintf("%s N=%d", name, n))
		visited, err := rope.Simulate(instructions, n)
		timer.StopWithThreshold(slowPartThreshold)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", name, err)
		}
		log.Debug("part solved", zap.Int("segments", n), zap.Int("visited", visited))
		catLog.Info("N=%d visited=%d", n, visited)
		logging.Sim("%s N=%d: tail visited %d positions", name, n, visited)
		res.Answers = append(res.Answers, Answer{Segments: n, Visited: visited})
	}

	log.Debug("input solved", zap.Int("instructions", len(instructions)), zap.Int("parts", len(res.Answers)))
	logging.Solve("%s: solved %d parts", name, len(res.Answers))
	return res, nil
}

// SolveFile opens path and solves it. The path "-" reads s.Stdin.
func (s *Solver) SolveFile(ctx context.Context, path string) (Result, error) {
	if path == "-" {
		return s.SolveInput(ctx, "stdin", s.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return s.SolveInput(ctx, path, f)
}

// SolveFiles solves every path concurrently, one goroutine per file. Results
// are returned in argument order; the first failure cancels the rest.
func (s *Solver) SolveFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			res, err := s.SolveFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Format writes one "<name> part<i> (N=<n>): <count>" line per answer.
func Format(w io.Writer, results ...Result) error {
	for _, res := range results {
		for i, a := range res.Answers {
			if _, err := fmt.Fprintf(w, "%s part%d (N=%d): %d\n", res.Name, i+1, a.Segments, a.Visited); err != nil {
				return err
			}
		}
	}
	return nil
}
