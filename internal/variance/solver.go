package variance

import (
	"github.com/tamewild/variance/internal/diagnostics"
	"github.com/tamewild/variance/internal/typeir"
)

// Solve runs the fixed-point iteration of spec §4.5: solutions starts at
// Bivariant (lattice top) for every inferred index and is narrowed by
// repeated application of each constraint until a full pass makes no
// change. maxIterations caps the number of full sweeps as a
// non-termination guard; it should never bind on well-formed input.
func Solve(n int, constraints []Constraint, maxIterations int) ([]typeir.Variance, error) {
	solutions := make([]typeir.Variance, n)
	// typeir.Bivariant is the zero value, so solutions already starts
	// there without an initialization loop.

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for _, c := range constraints {
			v := Evaluate(c.Term, solutions)
			narrowed := typeir.GLB(solutions[c.Index], v)
			if narrowed != solutions[c.Index] {
				solutions[c.Index] = narrowed
				changed = true
			}
		}
		if !changed {
			return solutions, nil
		}
	}

	return nil, diagnostics.Bugf(diagnostics.ErrSolverNonConvergence, diagnostics.Span{},
		"variance solver failed to converge after %d iterations over %d constraints", maxIterations, len(constraints))
}
