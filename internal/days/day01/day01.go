// Package day01 scores two location lists against each other.
package day01

import (
	"github.com/danmuck/advent2024/internal/location"
	"github.com/danmuck/advent2024/internal/puzzle"
)

var Metadata = puzzle.Metadata{
	ID:          puzzle.DayID(1),
	Day:         1,
	Name:        "Historian Hysteria",
	Description: "Total distance and similarity score between two location lists",
}

// Solver returns the registry entry for day 1.
func Solver() puzzle.Solver {
	return puzzle.Funcs{Meta: Metadata, PartOne: PartOne, PartTwo: PartTwo}
}

// PartOne is the total distance between the sorted left and right lists.
func PartOne(input string) (int, error) {
	pairs, err := location.ParsePairList(input)
	if err != nil {
		return 0, err
	}
	return int(pairs.TotalDistance()), nil
}

// PartTwo is the frequency-weighted similarity score.
func PartTwo(input string) (int, error) {
	pairs, err := location.ParsePairList(input)
	if err != nil {
		return 0, err
	}
	return int(pairs.SimilarityScore()), nil
}
