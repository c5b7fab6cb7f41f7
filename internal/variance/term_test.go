package variance

import (
	"testing"

	"github.com/tamewild/variance/internal/typeir"
)

func TestPoolConstantIsCached(t *testing.T) {
	p := NewPool()
	a := p.Constant(typeir.Covariant)
	b := p.Constant(typeir.Covariant)
	if a != b {
		t.Errorf("Constant(Covariant) returned distinct pointers across calls")
	}
}

func TestPoolInferredAllocatesFreshLeaf(t *testing.T) {
	p := NewPool()
	a := p.Inferred(0)
	b := p.Inferred(0)
	if a == b {
		t.Errorf("Inferred should allocate a fresh leaf each call, got shared pointer")
	}
}

func TestBuildTransformCovariantIsNoOp(t *testing.T) {
	p := NewPool()
	leaf := p.Inferred(0)
	got := p.BuildTransform(leaf, p.Constant(typeir.Covariant))
	if got != leaf {
		t.Errorf("BuildTransform(t1, Covariant) = %v, want t1 unchanged", got)
	}
}

func TestBuildTransformFoldsConstants(t *testing.T) {
	p := NewPool()
	got := p.BuildTransform(p.Constant(typeir.Contravariant), p.Constant(typeir.Contravariant))
	want := p.Constant(typeir.Covariant)
	if got != want {
		t.Errorf("BuildTransform(Contra, Contra) = %v, want cached Covariant constant", got)
	}
}

func TestBuildTransformAllocatesNodeForNonConstants(t *testing.T) {
	p := NewPool()
	leaf := p.Inferred(0)
	got := p.BuildTransform(p.Constant(typeir.Contravariant), leaf)
	if got.kind != transformTerm {
		t.Fatalf("got.kind = %v, want transformTerm", got.kind)
	}
	if got.t1 != p.Constant(typeir.Contravariant) || got.t2 != leaf {
		t.Errorf("transform node did not retain its operands")
	}
}

func TestEvaluateConstant(t *testing.T) {
	p := NewPool()
	got := Evaluate(p.Constant(typeir.Invariant), nil)
	if got != typeir.Invariant {
		t.Errorf("Evaluate(Constant(Invariant)) = %v, want Invariant", got)
	}
}

func TestEvaluateInferredReadsSolution(t *testing.T) {
	p := NewPool()
	leaf := p.Inferred(2)
	solutions := []typeir.Variance{typeir.Bivariant, typeir.Bivariant, typeir.Contravariant}
	got := Evaluate(leaf, solutions)
	if got != typeir.Contravariant {
		t.Errorf("Evaluate(Inferred(2)) = %v, want Contravariant", got)
	}
}

func TestEvaluateTransformRecurses(t *testing.T) {
	p := NewPool()
	leaf := p.Inferred(0)
	term := p.BuildTransform(p.Constant(typeir.Contravariant), leaf)
	solutions := []typeir.Variance{typeir.Contravariant}
	got := Evaluate(term, solutions)
	if got != typeir.Covariant {
		t.Errorf("Evaluate(Contra x Contra) = %v, want Covariant", got)
	}
}

func TestTermStringRendersIndexBeyondSingleDigit(t *testing.T) {
	p := NewPool()
	leaf := p.Inferred(12)
	got := leaf.String()
	want := "[12]"
	if got != want {
		t.Errorf("leaf.String() = %q, want %q", got, want)
	}
}
