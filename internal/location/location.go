// Package location parses and scores the two-column location lists used by
// the day 1 puzzle.
//
// Parsing is strict: every non-blank line must carry exactly two unsigned
// integers, and the first bad line fails the whole input. Both columns are
// kept sorted ascending so that pairing is a plain index walk.
package location

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/danmuck/advent2024/internal/numeric"
)

var (
	// ErrMissingColumn indicates a line with fewer than two locations.
	ErrMissingColumn = errors.New("location: missing column")
	// ErrExtraColumn indicates a line with more than two locations.
	ErrExtraColumn = errors.New("location: unexpected extra column")
	// ErrInvalidLocation indicates a token that is not an unsigned 32-bit integer.
	ErrInvalidLocation = errors.New("location: invalid location")
)

// Location is an opaque identifier compared only by value.
type Location uint32

// Distance is the absolute difference between two locations.
func Distance(a, b Location) uint32 {
	return uint32(numeric.AbsDiff(a, b))
}

// List is a collection of locations kept in ascending order.
type List []Location

// NewList copies locs and sorts the copy.
func NewList(locs []Location) List {
	out := slices.Clone(locs)
	slices.Sort(out)
	return out
}

// FrequencyTable counts occurrences per location. Missing keys read as 0.
type FrequencyTable map[Location]int

// Count returns how often loc occurs.
func (f FrequencyTable) Count(loc Location) int {
	return f[loc]
}

func (l List) Frequencies() FrequencyTable {
	freq := make(FrequencyTable, len(l))
	for _, loc := range l {
		freq[loc]++
	}
	return freq
}

// PairList is the parsed form of the two input columns.
type PairList struct {
	Left  List
	Right List
}

// Len is the number of parsed lines. Both sides always match.
func (p PairList) Len() int {
	return len(p.Left)
}

// Swap exchanges the left and right columns.
func (p PairList) Swap() PairList {
	return PairList{Left: p.Right, Right: p.Left}
}

// TotalDistance pairs the sorted columns index by index and sums the gaps.
func (p PairList) TotalDistance() uint64 {
	var total uint64
	for i := range p.Left {
		total += uint64(Distance(p.Left[i], p.Right[i]))
	}
	return total
}

// SimilarityScore weights every left location by how often it appears on
// the right.
func (p PairList) SimilarityScore() uint64 {
	freq := p.Right.Frequencies()
	var score uint64
	for _, loc := range p.Left {
		score += uint64(loc) * uint64(freq.Count(loc))
	}
	return score
}

// ParsePairList reads one pair of whitespace-separated locations per line.
// Empty lines are skipped; a line holding only spaces or tabs is a missing
// column. Line numbers in errors are 1-based over the raw text.
func ParsePairList(text string) (PairList, error) {
	var left, right []Location
	lineNum := 0
	for line := range strings.Lines(text) {
		lineNum++
		if strings.TrimRight(line, "\r\n") == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 2 {
			return PairList{}, fmt.Errorf("line %d: %w %q", lineNum, ErrExtraColumn, fields[2])
		}

		l, err := parseColumn(lineNum, "first", fields, 0)
		if err != nil {
			return PairList{}, err
		}
		r, err := parseColumn(lineNum, "second", fields, 1)
		if err != nil {
			return PairList{}, err
		}
		left = append(left, l)
		right = append(right, r)
	}
	return PairList{Left: NewList(left), Right: NewList(right)}, nil
}

func parseColumn(lineNum int, name string, fields []string, idx int) (Location, error) {
	if idx >= len(fields) {
		return 0, fmt.Errorf("line %d: %w: %s number", lineNum, ErrMissingColumn, name)
	}
	tok := fields[idx]
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("line %d: %w %q: %w", lineNum, ErrInvalidLocation, tok, err)
	}
	return Location(n), nil
}
