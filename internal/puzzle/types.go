package puzzle

import "fmt"

// Metadata is the contract for solver identity and display data.
type Metadata struct {
	ID          string
	Day         int
	Name        string
	Description string
}

// Solver computes both answers for one puzzle from its raw input text.
type Solver interface {
	Metadata() Metadata
	SolvePartOne(input string) (int, error)
	SolvePartTwo(input string) (int, error)
}

// PartFunc is a pure solver for a single part.
type PartFunc func(input string) (int, error)

// Funcs adapts a pair of PartFuncs to the Solver interface.
type Funcs struct {
	Meta    Metadata
	PartOne PartFunc
	PartTwo PartFunc
}

func (f Funcs) Metadata() Metadata {
	return f.Meta
}

func (f Funcs) SolvePartOne(input string) (int, error) {
	if f.PartOne == nil {
		return 0, fmt.Errorf("%s: %w", f.Meta.ID, ErrPartMissing)
	}
	return f.PartOne(input)
}

func (f Funcs) SolvePartTwo(input string) (int, error) {
	if f.PartTwo == nil {
		return 0, fmt.Errorf("%s: %w", f.Meta.ID, ErrPartMissing)
	}
	return f.PartTwo(input)
}

// DayID is the canonical identifier for a puzzle day, e.g. "day03".
func DayID(day int) string {
	return fmt.Sprintf("day%02d", day)
}
