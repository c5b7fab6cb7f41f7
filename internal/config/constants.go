package config

// Version is the current release of this module.
var Version = "0.1.0"

// IsTestMode indicates whether the process is running under `go test`.
// When this is set, debug rendering flattens the self-parameter pointer to
// a plain value, so golden output in tests stays stable across runs. Set
// once at process startup.
var IsTestMode = false

// DebugAttributeName is the developer-visible marker attribute that
// triggers the diagnostic debug-dump hook (see the variance package's
// debug.go). It carries no meaning to the analysis itself.
const DebugAttributeName = "rustc_variance"

// DefaultMaxIterationsPerConstraint bounds the solver's defense-in-depth
// iteration cap relative to the constraint count. The true bound proven in
// the design notes is O(N + C); this multiplier leaves slack for the cap to
// never trip on well-formed input while still catching a runaway, buggy
// constraint set.
const DefaultMaxIterationsPerConstraint = 4
