package day02

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/danmuck/advent2024/internal/numeric"
)

// ErrInvalidLevel indicates a token in a report line that is not an integer.
var ErrInvalidLevel = errors.New("day02: invalid level")

// StepKind classifies the change between two adjacent levels.
type StepKind int

const (
	StepLevel StepKind = iota
	StepUp
	StepDown
)

func (k StepKind) String() string {
	switch k {
	case StepUp:
		return "up"
	case StepDown:
		return "down"
	default:
		return "level"
	}
}

// Step is the direction and size of the move from one level to the next.
type Step struct {
	Kind      StepKind
	Magnitude int
}

// NewStep classifies the move from prev to next.
func NewStep(prev, next int) Step {
	magnitude := numeric.AbsDiff(prev, next)
	switch {
	case next > prev:
		return Step{Kind: StepUp, Magnitude: magnitude}
	case next < prev:
		return Step{Kind: StepDown, Magnitude: magnitude}
	default:
		return Step{Kind: StepLevel}
	}
}

// Direction is the trend a report has committed to while scanning.
type Direction int

const (
	Unknown Direction = iota
	Ascending
	Descending
)

// Report is one line of levels.
type Report []int

// ParseReport reads whitespace-separated integer levels. An empty line is an
// empty report.
func ParseReport(line string) (Report, error) {
	fields := strings.Fields(line)
	report := make(Report, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidLevel, field, err)
		}
		report = append(report, n)
	}
	return report, nil
}

// Steps returns the steps between consecutive levels after dropping the
// levels at the given indices. skip must be sorted ascending.
func (r Report) Steps(skip []int) []Step {
	var steps []Step
	prev, havePrev := 0, false
	next := 0
	for i, level := range r {
		if next < len(skip) && skip[next] == i {
			next++
			continue
		}
		if havePrev {
			steps = append(steps, NewStep(prev, level))
		}
		prev, havePrev = level, true
	}
	return steps
}

// IsSafe reports whether some way of removing at most maxRemovals levels
// leaves a strictly monotonic sequence whose steps are all within maxStep.
// Every index subset is tried, so the check is exhaustive.
func (r Report) IsSafe(maxRemovals, maxStep int) bool {
	if len(r) < 2 {
		return true
	}
	maxRemovals = max(0, min(maxRemovals, len(r)))
	for k := 0; k <= maxRemovals; k++ {
		for skip := range combinations(len(r), k) {
			if stepsSafe(r.Steps(skip), maxStep) {
				return true
			}
		}
	}
	return false
}

func stepsSafe(steps []Step, maxStep int) bool {
	dir := Unknown
	for _, step := range steps {
		if step.Kind == StepLevel || step.Magnitude > maxStep {
			return false
		}
		switch step.Kind {
		case StepUp:
			if dir == Descending {
				return false
			}
			dir = Ascending
		case StepDown:
			if dir == Ascending {
				return false
			}
			dir = Descending
		}
	}
	return true
}

// combinations yields every k-element subset of [0, n) in lexicographic
// order. The yielded slice is reused between iterations.
func combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			i := k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
