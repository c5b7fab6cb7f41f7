package typeir

// Region is a lifetime annotation. The constraint generator only expects
// to see three shapes in a well-formed, already-resolved program: an
// early-bound region that names a declared parameter, 'static, or a
// late-bound region (scoped to a method or function type, and therefore
// skipped — spec §4.4, §9 "ignored regions"). Any other shape is an
// internal-consistency violation (spec §7).
type Region interface {
	regionNode()
}

// EarlyBoundRegion is a lifetime parameter declared on the enclosing item.
// It participates in variance inference (spec glossary, "early-bound
// region").
type EarlyBoundRegion struct {
	Param ParamID
}

func (EarlyBoundRegion) regionNode() {}

// StaticRegion is 'static. It contributes no constraint.
type StaticRegion struct{}

func (StaticRegion) regionNode() {}

// LateBoundRegion is a lifetime bound inside a method or function type. It
// does not correspond to any declared generic parameter of the enclosing
// item and is silently ignored (spec glossary, "late-bound region").
type LateBoundRegion struct{}

func (LateBoundRegion) regionNode() {}

// UnexpectedRegionKind names one of the region shapes the pass should
// never encounter when visiting member or method types (spec §4.4's
// `emit_region` table, "any other region").
type UnexpectedRegionKind int

const (
	FreeRegionKind UnexpectedRegionKind = iota
	ScopeRegionKind
	RegionPlaceholderKind
	EmptyRegionKind
)

// UnexpectedRegion wraps one of the region shapes that should never reach
// the generator on well-formed input; emitting a constraint for one is a
// fatal compiler bug (spec §7).
type UnexpectedRegion struct {
	Kind UnexpectedRegionKind
}

func (UnexpectedRegion) regionNode() {}
