package solve

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"ropewalk/internal/config"
	"ropewalk/internal/logging"
	"ropewalk/internal/rope"
)

const (
	shortExample = "R 4\nU 4\nL 3\nD 1\nR 4\nD 1\nL 5\nR 2\n"
	longExample  = "R 5\nU 8\nL 8\nD 3\nR 17\nD 10\nL 25\nU 20\n"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSolveInput(t *testing.T) {
	s := New(nil, rope.Parser{}, zaptest.NewLogger(t))

	res, err := s.SolveInput(context.Background(), "short", strings.NewReader(shortExample))
	require.NoError(t, err)

	assert.Equal(t, "short", res.Name)
	assert.NotEmpty(t, res.RunID)
	want := []Answer{{Segments: 2, Visited: 13}, {Segments: 10, Visited: 1}}
	if diff := cmp.Diff(want, res.Answers); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveInput_CustomParts(t *testing.T) {
	s := New([]int{10, 2}, rope.Parser{}, nil)

	res, err := s.SolveInput(context.Background(), "long", strings.NewReader(longExample))
	require.NoError(t, err)
	assert.Equal(t, []Answer{{Segments: 10, Visited: 36}, {Segments: 2, Visited: 88}}, res.Answers)
}

func TestSolveInput_ParseError(t *testing.T) {
	s := New(nil, rope.Parser{}, nil)

	_, err := s.SolveInput(context.Background(), "bad", strings.NewReader("R 1\nQ 3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, rope.ErrParse)
	assert.Contains(t, err.Error(), "bad:")
}

func TestSolveInput_PreconditionError(t *testing.T) {
	s := New([]int{1}, rope.Parser{}, nil)

	_, err := s.SolveInput(context.Background(), "x", strings.NewReader(shortExample))
	assert.ErrorIs(t, err, rope.ErrPrecondition)
}

func TestSolveInput_Cancelled(t *testing.T) {
	s := New(nil, rope.Parser{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SolveInput(ctx, "short", strings.NewReader(shortExample))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveInput_ZeroCountPolicy(t *testing.T) {
	strict := New(nil, rope.Parser{}, nil)
	_, err := strict.SolveInput(context.Background(), "z", strings.NewReader("R 0\n"))
	assert.ErrorIs(t, err, rope.ErrParse)

	lenient := New(nil, rope.Parser{AllowZeroCount: true}, nil)
	res, err := lenient.SolveInput(context.Background(), "z", strings.NewReader("R 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []Answer{{Segments: 2, Visited: 1}, {Segments: 10, Visited: 1}}, res.Answers)
}

func TestSolveFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInput(t, dir, "long.txt", longExample),
		writeInput(t, dir, "short.txt", shortExample),
		writeInput(t, dir, "long2.txt", longExample),
	}

	s := New(nil, rope.Parser{}, nil)
	results, err := s.SolveFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, paths[0], results[0].Name)
	assert.Equal(t, 88, results[0].Answers[0].Visited)
	assert.Equal(t, 13, results[1].Answers[0].Visited)
	assert.Equal(t, 36, results[2].Answers[1].Visited)
	assert.NotEqual(t, results[0].RunID, results[2].RunID)
}

func TestSolveFiles_FirstErrorWins(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeInput(t, dir, "ok.txt", shortExample),
		filepath.Join(dir, "missing.txt"),
	}

	s := New(nil, rope.Parser{}, nil)
	results, err := s.SolveFiles(context.Background(), paths)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Format(&buf, Result{
		Name:    "input.txt",
		Answers: []Answer{{Segments: 2, Visited: 13}, {Segments: 10, Visited: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "input.txt part1 (N=2): 13\ninput.txt part2 (N=10): 1\n", buf.String())
}

func TestSolveInput_CategoryLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logging.Initialize(config.LoggingConfig{DebugMode: true}, zap.New(core))
	t.Cleanup(func() { logging.Initialize(config.LoggingConfig{}, nil) })

	s := New(nil, rope.Parser{}, nil)
	_, err := s.SolveInput(context.Background(), "short", strings.NewReader(shortExample))
	require.NoError(t, err)
	_, err = s.SolveInput(context.Background(), "bad", strings.NewReader("Q 3\n"))
	require.ErrorIs(t, err, rope.ErrParse)

	byCategory := make(map[string][]string)
	for _, e := range logs.All() {
		byCategory[e.LoggerName] = append(byCategory[e.LoggerName], e.Message)
	}
	assert.Contains(t, byCategory["sim"], "short N=2: tail visited 13 positions")
	assert.Contains(t, byCategory["sim"], "short N=10: tail visited 1 positions")
	assert.Contains(t, byCategory["solve"], "short: solved 2 parts")
	require.NotEmpty(t, byCategory["parse"])
	assert.Contains(t, byCategory["parse"][len(byCategory["parse"])-1], "bad: rejected:")
}
