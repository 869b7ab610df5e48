// Package day02 counts reactor reports that are safe, optionally with one
// level dampened away.
package day02

import (
	"strings"

	"github.com/danmuck/advent2024/internal/puzzle"
	"github.com/rs/zerolog/log"
)

// MaxStep is the largest allowed change between adjacent levels.
const MaxStep = 3

var Metadata = puzzle.Metadata{
	ID:          puzzle.DayID(2),
	Day:         2,
	Name:        "Red-Nosed Reports",
	Description: "Count monotonic reports with bounded steps, with and without dampening",
}

// Solver returns the registry entry for day 2.
func Solver() puzzle.Solver {
	return puzzle.Funcs{Meta: Metadata, PartOne: PartOne, PartTwo: PartTwo}
}

func PartOne(input string) (int, error) {
	return CountSafe(input, 0, MaxStep), nil
}

func PartTwo(input string) (int, error) {
	return CountSafe(input, 1, MaxStep), nil
}

// CountSafe counts the reports in input that pass IsSafe. Lines that fail to
// parse are logged and left out of the count.
func CountSafe(input string, maxRemovals, maxStep int) int {
	count := 0
	lineNum := 0
	for line := range strings.Lines(input) {
		lineNum++
		report, err := ParseReport(line)
		if err != nil {
			log.Debug().Err(err).Int("line", lineNum).Msg("day02: skipping report")
			continue
		}
		if report.IsSafe(maxRemovals, maxStep) {
			count++
		}
	}
	return count
}
