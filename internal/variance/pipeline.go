package variance

import "github.com/tamewild/variance/internal/typeir"

// PassContext threads the pass's working state through the pipeline's
// stages: indexer output feeds the generator, generator output feeds the
// solver, and so on. Err is set by the first stage that fails; Pipeline.Run
// then runs no further stages (spec §7: a fatal bug aborts the pass).
type PassContext struct {
	TC   typeir.TypeContext
	Prog typeir.Program
	VM   typeir.VarianceMap
	Opts Options

	Pool      *Pool
	Indexer   *Indexer
	Generator *Generator
	Solutions []typeir.Variance

	Err error
}

// NewPassContext seeds a PassContext ready for the pipeline's first stage.
func NewPassContext(tc typeir.TypeContext, prog typeir.Program, vm typeir.VarianceMap, opts Options) *PassContext {
	pool := NewPool()
	return &PassContext{
		TC:      tc,
		Prog:    prog,
		VM:      vm,
		Opts:    opts,
		Pool:    pool,
		Indexer: NewIndexer(tc, vm, pool),
	}
}

// Processor is one pipeline stage. Unlike the teacher's own pipeline
// (which runs every processor to accumulate diagnostics from independent
// phases), this pass is a single sequential algorithm per spec §5 — a
// failed stage means the rest of the state is meaningless, so Pipeline
// stops instead of continuing to collect further errors.
type Processor interface {
	Process(ctx *PassContext) *PassContext
}

// Pipeline runs its processors in order, short-circuiting on the first
// one that records an error.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered list of stages.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline over ctx, returning the context as left by
// the last stage that ran.
func (p *Pipeline) Run(ctx *PassContext) *PassContext {
	for _, processor := range p.processors {
		if ctx.Err != nil {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}

// IndexProcessor runs the Indexer over the program (spec §4.3).
type IndexProcessor struct{}

func (IndexProcessor) Process(ctx *PassContext) *PassContext {
	if err := ctx.Indexer.Run(ctx.Prog); err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Generator = NewGenerator(ctx.TC, ctx.Pool, ctx.Indexer)
	return ctx
}

// GenerateProcessor runs the constraint generator (spec §4.4).
type GenerateProcessor struct{}

func (GenerateProcessor) Process(ctx *PassContext) *PassContext {
	if err := ctx.Generator.Run(ctx.Prog); err != nil {
		ctx.Err = err
	}
	return ctx
}

// SolveProcessor runs the fixed-point solver (spec §4.5).
type SolveProcessor struct{}

func (SolveProcessor) Process(ctx *PassContext) *PassContext {
	n := len(ctx.Indexer.Records())
	maxIter := ctx.Opts.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations(n, len(ctx.Generator.Constraints()))
	}
	solutions, err := Solve(n, ctx.Generator.Constraints(), maxIter)
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.Solutions = solutions
	return ctx
}

// PublishProcessor installs the solved variances into the external map
// (spec §4.5, "Publication").
type PublishProcessor struct{}

func (PublishProcessor) Process(ctx *PassContext) *PassContext {
	if err := Publish(ctx.Indexer.Records(), ctx.Solutions, ctx.VM); err != nil {
		ctx.Err = err
	}
	return ctx
}

// DebugProcessor runs the rustc_variance marker-attribute hook (spec
// §4.6) when ctx.Opts.EnableDebugHook is set. It never sets Err: the hook
// is test-suite plumbing and must not affect the analysis outcome.
type DebugProcessor struct{}

func (DebugProcessor) Process(ctx *PassContext) *PassContext {
	if !ctx.Opts.EnableDebugHook {
		return ctx
	}
	reportDebugAttributes(ctx.TC, ctx.Prog, ctx.VM)
	return ctx
}
