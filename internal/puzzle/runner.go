package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/danmuck/advent2024/internal/observability"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultInputDir is where dayNN.txt input files live unless configured.
const DefaultInputDir = "input"

// PartResult is the outcome of one part. Err is nil on success.
type PartResult struct {
	Value    int
	Err      error
	Duration time.Duration
}

func (p PartResult) OK() bool {
	return p.Err == nil
}

// Report holds both part results for one puzzle run.
type Report struct {
	ID      string
	Day     int
	Name    string
	PartOne PartResult
	PartTwo PartResult
}

// Runner resolves input files and executes solvers against them.
type Runner struct {
	InputDir string
	Parallel bool
	Logger   zerolog.Logger
}

// NewRunner returns a sequential runner reading from inputDir.
func NewRunner(inputDir string, logger zerolog.Logger) *Runner {
	if inputDir == "" {
		inputDir = DefaultInputDir
	}
	return &Runner{InputDir: inputDir, Logger: logger}
}

// InputPath returns the input file location for day.
func (r *Runner) InputPath(day int) string {
	return filepath.Join(r.InputDir, DayID(day)+".txt")
}

// LoadInput reads the input for day. A missing directory or file is
// created empty so the user has somewhere to paste the puzzle input.
func (r *Runner) LoadInput(day int) (string, error) {
	path := r.InputPath(day)
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		r.Logger.Info().Str("dir", dir).Msg("input folder does not exist, creating it")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create input folder %s: %w", dir, err)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		r.Logger.Info().Int("day", day).Str("path", path).Msg("input file does not exist, creating it")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return "", fmt.Errorf("create input file %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("create input file %s: %w", path, err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file %s: %w", path, err)
	}
	return string(data), nil
}

// Run loads the day's input and solves both parts. The returned error is
// only for input problems; part failures are carried in the Report.
func (r *Runner) Run(ctx context.Context, solver Solver) (Report, error) {
	meta := solver.Metadata()
	input, err := r.LoadInput(meta.Day)
	if err != nil {
		return Report{}, err
	}
	return r.Solve(ctx, solver, input), nil
}

// Solve runs both parts of solver on input.
func (r *Runner) Solve(ctx context.Context, solver Solver, input string) Report {
	meta := solver.Metadata()
	report := Report{ID: meta.ID, Day: meta.Day, Name: meta.Name}

	if !r.Parallel {
		report.PartOne = r.solvePart(ctx, meta, 1, solver.SolvePartOne, input)
		report.PartTwo = r.solvePart(ctx, meta, 2, solver.SolvePartTwo, input)
		return report
	}

	var g errgroup.Group
	g.Go(func() error {
		report.PartOne = r.solvePart(ctx, meta, 1, solver.SolvePartOne, input)
		return nil
	})
	g.Go(func() error {
		report.PartTwo = r.solvePart(ctx, meta, 2, solver.SolvePartTwo, input)
		return nil
	})
	_ = g.Wait()
	return report
}

// RunAll runs the requested days in the given order; nil or empty days means
// every registered day. Unknown days fail before anything runs.
func (r *Runner) RunAll(ctx context.Context, registry *Registry, days []int) ([]Report, error) {
	if len(days) == 0 {
		days = registry.Days()
	}
	solvers := make([]Solver, len(days))
	for i, day := range days {
		solver, ok := registry.ResolveDay(day)
		if !ok {
			return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
		}
		solvers[i] = solver
	}

	reports := make([]Report, len(solvers))
	g, gctx := errgroup.WithContext(ctx)
	if !r.Parallel {
		g.SetLimit(1)
	}
	for i, solver := range solvers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := r.Run(gctx, solver)
			if err != nil {
				return fmt.Errorf("%s: %w", solver.Metadata().ID, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *Runner) solvePart(ctx context.Context, meta Metadata, part int, fn PartFunc, input string) PartResult {
	partLabel := strconv.Itoa(part)
	if err := ctx.Err(); err != nil {
		return PartResult{Err: err}
	}

	start := time.Now()
	value, err := fn(input)
	elapsed := time.Since(start)
	observability.RecordSolve(meta.ID, partLabel, elapsed, err)

	event := r.Logger.Debug()
	if err != nil {
		event = r.Logger.Warn().Err(err)
	}
	event.
		Str("puzzle", meta.ID).
		Str("part", partLabel).
		Int("value", value).
		Dur("duration", elapsed).
		Msg("part solved")

	return PartResult{Value: value, Err: err, Duration: elapsed}
}
