package variance

import (
	"github.com/google/uuid"

	"github.com/tamewild/variance/internal/diagnostics"
	"github.com/tamewild/variance/internal/typeir"
)

// InferVariance is the pass's single entry point (spec §6):
// infer_variance(type_context, program) -> (), side-effectful on the type
// context's variance map. It runs the indexer, constraint generator,
// solver, and publication step in sequence and, on success and when
// opts.EnableDebugHook is set, the rustc_variance debug hook.
//
// A non-nil error is always a fatal internal-consistency violation (spec
// §7); it is never raised on well-formed input.
func InferVariance(tc typeir.TypeContext, prog typeir.Program, vm typeir.VarianceMap, opts Options) error {
	runID := uuid.New()

	ctx := NewPassContext(tc, prog, vm, opts)
	pipeline := New(
		IndexProcessor{},
		GenerateProcessor{},
		SolveProcessor{},
		PublishProcessor{},
		DebugProcessor{},
	)
	ctx = pipeline.Run(ctx)
	if ctx.Err != nil {
		if bug, ok := ctx.Err.(*diagnostics.Error); ok {
			tc.Diagnostics().Bug(bug)
		}
		return &RunError{RunID: runID, Cause: ctx.Err}
	}
	return nil
}
