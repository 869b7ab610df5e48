// Package day03 recovers multiply instructions from corrupted memory.
package day03

import "github.com/danmuck/advent2024/internal/puzzle"

var Metadata = puzzle.Metadata{
	ID:          puzzle.DayID(3),
	Day:         3,
	Name:        "Mull It Over",
	Description: "Sum mul(x,y) products, optionally gated by do() and don't()",
}

// Solver returns the registry entry for day 3.
func Solver() puzzle.Solver {
	return puzzle.Funcs{Meta: Metadata, PartOne: PartOne, PartTwo: PartTwo}
}

func PartOne(input string) (int, error) {
	return Sum(Scan(input), false), nil
}

func PartTwo(input string) (int, error) {
	return Sum(Scan(input), true), nil
}
