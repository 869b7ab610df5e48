// Package puzzle owns the solver contract and the harness that runs it.
//
// Ownership boundary:
// - solver metadata shape
// - solver registry keyed by day identifier
// - input file resolution and part execution
package puzzle
