// Package days wires every implemented puzzle into a registry.
package days

import (
	"github.com/danmuck/advent2024/internal/days/day01"
	"github.com/danmuck/advent2024/internal/days/day02"
	"github.com/danmuck/advent2024/internal/days/day03"
	"github.com/danmuck/advent2024/internal/puzzle"
)

// Solvers lists the built-in solvers in day order.
func Solvers() []puzzle.Solver {
	return []puzzle.Solver{
		day01.Solver(),
		day02.Solver(),
		day03.Solver(),
	}
}

// Builtin returns a registry holding every built-in solver.
func Builtin() (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	for _, s := range Solvers() {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}
