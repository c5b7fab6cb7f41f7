// Package variance implements the variance inference pass itself: the
// symbolic term language, the constraint generator, and the fixed-point
// solver described in spec §§2-5. Everything it consumes comes through
// the typeir package's TypeContext oracle; everything it produces is
// written into a typeir.VarianceMap.
package variance

import (
	"strconv"

	"github.com/tamewild/variance/internal/typeir"
)

// TermKind tags which of the three term shapes a Term is (spec §3).
type TermKind int

const (
	constantTerm TermKind = iota
	transformTerm
	inferredTerm
)

// Term is a symbolic variance expression. Terms are immutable after
// allocation and live for the lifetime of one pass invocation; sharing is
// permitted (the pool caches constants) but never required. The original
// implementation arena-allocates a tree of nodes and threads back
// references through it; since Go terms are never mutated, a plain heap
// pointer serves as the "stable reference into a pinned pool" spec §9
// calls for — there is no separate arena to manage.
type Term struct {
	kind     TermKind
	constant typeir.Variance
	t1, t2   *Term
	index    InferredIndex
}

func (t *Term) String() string {
	switch t.kind {
	case constantTerm:
		return t.constant.String()
	case transformTerm:
		return "(" + t.t1.String() + " x " + t.t2.String() + ")"
	case inferredTerm:
		return "[" + strconv.Itoa(int(t.index)) + "]"
	default:
		return "?"
	}
}

// Pool allocates terms and pre-caches the four canonical constants plus
// the transform smart-constructor of spec §4.2.
type Pool struct {
	constants [4]*Term
}

// NewPool returns a Pool with its canonical constant terms pre-allocated.
func NewPool() *Pool {
	p := &Pool{}
	for _, v := range []typeir.Variance{typeir.Bivariant, typeir.Covariant, typeir.Contravariant, typeir.Invariant} {
		p.constants[v] = &Term{kind: constantTerm, constant: v}
	}
	return p
}

// Constant returns the pool-cached term for a fixed variance.
func (p *Pool) Constant(v typeir.Variance) *Term {
	return p.constants[v]
}

// Inferred allocates a fresh leaf term representing V(index). The indexer
// calls this exactly once per inferred index (spec §2, "assigns each
// inferable parameter ... materializes a leaf term for each identifier").
func (p *Pool) Inferred(index InferredIndex) *Term {
	return &Term{kind: inferredTerm, index: index}
}

// BuildTransform is the term pool's one construction smart-path (spec
// §4.2): covariant nesting is a no-op, two constants fold to a cached
// constant, and anything else allocates a fresh Transform node.
func (p *Pool) BuildTransform(t1, t2 *Term) *Term {
	if t2.kind == constantTerm && t2.constant == typeir.Covariant {
		return t1
	}
	if t1.kind == constantTerm && t2.kind == constantTerm {
		return p.Constant(typeir.Transform(t1.constant, t2.constant))
	}
	return &Term{kind: transformTerm, t1: t1, t2: t2}
}

// Evaluate is the homomorphism of spec §4.5: Constant evaluates to itself,
// Inferred reads the current solution vector, Transform recurses and
// applies xform to the results.
func Evaluate(t *Term, solutions []typeir.Variance) typeir.Variance {
	switch t.kind {
	case constantTerm:
		return t.constant
	case inferredTerm:
		return solutions[t.index]
	case transformTerm:
		return typeir.Transform(Evaluate(t.t1, solutions), Evaluate(t.t2, solutions))
	default:
		panic("variance: term with unknown kind")
	}
}
