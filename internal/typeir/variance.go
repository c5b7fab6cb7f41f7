// Package typeir defines the data model and external interfaces the
// variance pass consumes: the four-point variance lattice, the type/region
// shape enumeration the constraint generator pattern-matches against, and
// the TypeContext oracle the surrounding compiler is expected to supply
// (spec §3, §6). Nothing in this package runs the inference itself — that
// is internal/variance. typeir only describes the shapes both sides agree
// on.
package typeir

// Variance is one of the four lattice points described in spec §3.
//
//	            Bivariant (*)          top
//	           /          \
//	     Contravariant   Covariant
//	           \          /
//	            Invariant (o)          bottom
//
// Bivariant is the zero value deliberately: every solution vector cell
// starts there (lattice top) before the solver narrows it.
type Variance int

const (
	Bivariant Variance = iota
	Covariant
	Contravariant
	Invariant
)

func (v Variance) String() string {
	switch v {
	case Bivariant:
		return "*"
	case Covariant:
		return "+"
	case Contravariant:
		return "-"
	case Invariant:
		return "o"
	default:
		return "?"
	}
}

// transformTable[a][b] is the variance transformation of Figure 1 of The
// Paper: the variance with which an argument must satisfy when it sits at
// declared variance b inside an enclosing position of ambient variance a.
var transformTable = [4][4]Variance{
	Covariant:     {Bivariant: Bivariant, Covariant: Covariant, Contravariant: Contravariant, Invariant: Invariant},
	Contravariant: {Bivariant: Bivariant, Covariant: Contravariant, Contravariant: Covariant, Invariant: Invariant},
	Invariant:     {Bivariant: Invariant, Covariant: Invariant, Contravariant: Invariant, Invariant: Invariant},
	Bivariant:     {Bivariant: Bivariant, Covariant: Bivariant, Contravariant: Bivariant, Invariant: Bivariant},
}

// Transform computes the variance transformation xform(a, b) of spec §4.1.
func Transform(a, b Variance) Variance {
	return transformTable[a][b]
}

// GLB computes the greatest lower bound of two variances on the lattice
// (spec §4.1). It is commutative, associative, and idempotent; Bivariant is
// its identity and Invariant is absorbing.
func GLB(a, b Variance) Variance {
	if a == Invariant || b == Invariant {
		return Invariant
	}
	if a == Bivariant {
		return b
	}
	if b == Bivariant {
		return a
	}
	if a == b {
		return a
	}
	// One Covariant, one Contravariant.
	return Invariant
}
