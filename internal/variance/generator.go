package variance

import (
	"github.com/tamewild/variance/internal/diagnostics"
	"github.com/tamewild/variance/internal/typeir"
)

// Constraint is a pair (index, term), read as V(index) <= evaluate(term)
// (spec §3).
type Constraint struct {
	Index InferredIndex
	Term  *Term
}

// Generator traverses resolved types reachable from variance-bearing items
// and emits the constraint list the solver consumes (spec §4.4).
type Generator struct {
	tc   typeir.TypeContext
	pool *Pool
	ix   *Indexer

	constraints []Constraint
	current     *typeir.Item
}

// NewGenerator returns a Generator that resolves bare parameter references
// and Self through the inferred table ix already built.
func NewGenerator(tc typeir.TypeContext, pool *Pool, ix *Indexer) *Generator {
	return &Generator{tc: tc, pool: pool, ix: ix}
}

// Constraints returns the constraint list built so far.
func (g *Generator) Constraints() []Constraint {
	return g.constraints
}

func (g *Generator) addConstraint(index InferredIndex, ambient *Term) {
	g.constraints = append(g.constraints, Constraint{Index: index, Term: ambient})
}

func (g *Generator) bug(code diagnostics.ErrorCode, format string, args ...any) error {
	span := diagnostics.Span{}
	if g.current != nil {
		span = g.current.Span
	}
	return diagnostics.Bugf(code, span, format, args...)
}

// Run walks every variance-bearing item in prog and seeds constraint
// emission at its top-level positions (spec §4.4).
func (g *Generator) Run(prog typeir.Program) error {
	return typeir.WalkItems(prog, func(item *typeir.Item) error {
		g.current = item
		switch item.Kind {
		case typeir.EnumItem:
			return g.seedEnum(item)
		case typeir.StructItem:
			return g.seedStruct(item)
		case typeir.TraitItem:
			return g.seedTrait(item)
		default:
			return nil
		}
	})
}

func (g *Generator) seedEnum(item *typeir.Item) error {
	cov := g.pool.Constant(typeir.Covariant)
	for _, variant := range g.tc.EnumVariants(item.ID) {
		for _, t := range variant.ArgTypes {
			if err := g.emit(t, cov); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) seedStruct(item *typeir.Item) error {
	cov := g.pool.Constant(typeir.Covariant)
	for _, field := range g.tc.StructFields(item.ID) {
		if err := g.emit(field.Type, cov); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) seedTrait(item *typeir.Item) error {
	cov := g.pool.Constant(typeir.Covariant)
	contra := g.pool.Constant(typeir.Contravariant)
	for _, method := range g.tc.TraitMethods(item.ID) {
		if method.TransformedSelfType != nil {
			if err := g.emit(method.TransformedSelfType, contra); err != nil {
				return err
			}
		}
		if err := g.emitSig(method.Signature, cov); err != nil {
			return err
		}
	}
	return nil
}

// emit is the type traversal of spec §4.4.
func (g *Generator) emit(t typeir.Type, ambient *Term) error {
	switch v := t.(type) {
	case typeir.Primitive:
		return nil
	case typeir.RefType:
		if err := g.emitRegion(v.Region, g.pool.BuildTransform(ambient, g.pool.Constant(typeir.Contravariant))); err != nil {
			return err
		}
		return g.emitMutable(v.Elem, ambient)
	case typeir.IndirectType:
		return g.emitMutable(v.Elem, ambient)
	case typeir.SliceType:
		if err := g.emitVStore(v.Storage, ambient); err != nil {
			return err
		}
		return g.emitMutable(v.Elem, ambient)
	case typeir.StringType:
		return g.emitVStore(v.Storage, ambient)
	case typeir.TupleType:
		for _, elem := range v.Elems {
			if err := g.emit(elem, ambient); err != nil {
				return err
			}
		}
		return nil
	case typeir.NamedType:
		return g.emitSubsts(v, ambient)
	case typeir.ParamType:
		if index, ok := g.ix.IndexOfParam(v.Param); ok {
			g.addConstraint(index, ambient)
		}
		// Otherwise a method-scoped parameter: silently ignored (spec §4.4).
		return nil
	case typeir.SelfType:
		if g.current == nil {
			return g.bug(diagnostics.ErrMissingInferred, "Self reference outside any item")
		}
		index, ok := g.ix.IndexOfSelf(g.current.ID)
		if !ok {
			return g.bug(diagnostics.ErrMissingInferred, "no Self inferred for trait %q", g.current.ID)
		}
		g.addConstraint(index, ambient)
		return nil
	case typeir.FuncType:
		return g.emitSig(v, ambient)
	case typeir.ClosureType:
		if err := g.emitRegion(v.Region, g.pool.BuildTransform(ambient, g.pool.Constant(typeir.Contravariant))); err != nil {
			return err
		}
		return g.emitSigLike(v.Params, v.Return, ambient)
	case typeir.PlaceholderType:
		return g.bug(diagnostics.ErrUnresolvedPlaceholder, "unresolved inference placeholder reached the variance pass")
	case typeir.ErrorType:
		return g.bug(diagnostics.ErrSentinelType, "error-sentinel type reached the variance pass")
	case typeir.OpaqueInternalType:
		return g.bug(diagnostics.ErrSentinelType, "opaque internal type %q reached the variance pass", v.Label)
	default:
		return g.bug(diagnostics.ErrSentinelType, "unrecognized type shape %T", t)
	}
}

// emitMutable forces invariance across a mutable cell (spec §4.4).
func (g *Generator) emitMutable(m typeir.MutType, ambient *Term) error {
	if m.Mutable {
		return g.emit(m.Elem, g.pool.BuildTransform(ambient, g.pool.Constant(typeir.Invariant)))
	}
	return g.emit(m.Elem, ambient)
}

// emitSig recurses contravariantly into parameters and covariantly into the
// return type (spec §4.4).
func (g *Generator) emitSig(sig typeir.FuncType, ambient *Term) error {
	return g.emitSigLike(sig.Params, sig.Return, ambient)
}

func (g *Generator) emitSigLike(params []typeir.Type, ret typeir.Type, ambient *Term) error {
	contraAmbient := g.pool.BuildTransform(ambient, g.pool.Constant(typeir.Contravariant))
	for _, p := range params {
		if err := g.emit(p, contraAmbient); err != nil {
			return err
		}
	}
	return g.emit(ret, ambient)
}

// emitVStore handles slice/array and string storage (spec §4.4).
func (g *Generator) emitVStore(s typeir.Storage, ambient *Term) error {
	switch st := s.(type) {
	case typeir.SliceStorage:
		return g.emitRegion(st.Region, g.pool.BuildTransform(ambient, g.pool.Constant(typeir.Contravariant)))
	case typeir.FixedStorage, typeir.OwnedStorage, typeir.BoxStorage:
		return nil
	default:
		return g.bug(diagnostics.ErrSentinelType, "unrecognized storage shape %T", s)
	}
}

// emitRegion handles the four region shapes of spec §4.4.
func (g *Generator) emitRegion(r typeir.Region, ambient *Term) error {
	switch rg := r.(type) {
	case typeir.EarlyBoundRegion:
		index, ok := g.ix.IndexOfParam(rg.Param)
		if !ok {
			return g.bug(diagnostics.ErrMissingInferred, "no inferred for early-bound region %q", rg.Param)
		}
		g.addConstraint(index, ambient)
		return nil
	case typeir.StaticRegion:
		return nil
	case typeir.LateBoundRegion:
		return nil
	case typeir.UnexpectedRegion:
		return g.bug(diagnostics.ErrUnexpectedRegion, "unexpected region kind %d reached the variance pass", rg.Kind)
	default:
		return g.bug(diagnostics.ErrUnexpectedRegion, "unrecognized region shape %T", r)
	}
}

// emitSubsts is the substitution traversal of spec §4.4.1.
func (g *Generator) emitSubsts(nt typeir.NamedType, ambient *Term) error {
	for i, targ := range nt.TypeArgs {
		d, err := g.declaredVariance(nt.Item, nt.ItemKind, TypeParamKind, i)
		if err != nil {
			return err
		}
		if err := g.emit(targ, g.pool.BuildTransform(ambient, d)); err != nil {
			return err
		}
	}
	if nt.RegionsErased {
		return nil
	}
	for i, rarg := range nt.RegionArgs {
		d, err := g.declaredVariance(nt.Item, nt.ItemKind, RegionParamKind, i)
		if err != nil {
			return err
		}
		if err := g.emitRegion(rarg, g.pool.BuildTransform(ambient, d)); err != nil {
			return err
		}
	}
	return nil
}

// declaredVariance resolves declared_variance(C, kind, i) of spec §4.4.1:
// a symbolic Inferred leaf for a local item, or a solved Constant read out
// of the external variance map for one from another compilation unit.
func (g *Generator) declaredVariance(item typeir.ItemID, itemKind typeir.ItemKind, kind ParamKind, pos int) (*Term, error) {
	if g.tc.IsLocal(item) {
		for _, r := range g.ix.Records() {
			if r.Item == item && r.Kind == kind && r.Pos == pos {
				return r.Term, nil
			}
		}
		return nil, g.bug(diagnostics.ErrMissingInferred,
			"no inferred for local item %q position %d kind %d", item, pos, kind)
	}

	iv := g.tc.ItemVariances(item)
	switch kind {
	case TypeParamKind:
		if pos >= len(iv.TypeParams) {
			return nil, g.bug(diagnostics.ErrMissingInferred,
				"external item %q has no type-param variance at position %d", item, pos)
		}
		return g.pool.Constant(iv.TypeParams[pos]), nil
	case RegionParamKind:
		if pos >= len(iv.RegionParams) {
			return nil, g.bug(diagnostics.ErrMissingInferred,
				"external item %q has no region-param variance at position %d", item, pos)
		}
		return g.pool.Constant(iv.RegionParams[pos]), nil
	default:
		return nil, g.bug(diagnostics.ErrMissingInferred, "unexpected parameter kind %d", kind)
	}
}
