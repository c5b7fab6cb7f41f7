package variance

import "github.com/tamewild/variance/internal/config"

// Options configures one invocation of the pass. The zero value is valid:
// MaxIterations of zero means "compute a bound from N and C" (spec §4.5),
// and EnableDebugHook of false means the rustc_variance marker-attribute
// hook (spec §4.6) does not run.
type Options struct {
	// MaxIterations overrides the solver's sweep cap. Leave zero to use
	// the size-derived default; cmd/varcheck sets it from the config
	// file's solver.max_iterations.
	MaxIterations int

	// EnableDebugHook turns on the test-only rustc_variance marker
	// reporting (spec §4.6). Off by default: production callers shouldn't
	// pay for walking the program a second time to check attributes.
	EnableDebugHook bool
}

func defaultMaxIterations(n, constraints int) int {
	bound := (n + constraints) * config.DefaultMaxIterationsPerConstraint
	if bound < config.DefaultMaxIterationsPerConstraint {
		bound = config.DefaultMaxIterationsPerConstraint
	}
	return bound
}
