// Package numeric holds small integer helpers shared by the puzzle solvers.
package numeric

import "golang.org/x/exp/constraints"

// AbsDiff returns |a - b| without overflowing unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
