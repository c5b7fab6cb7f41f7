package typeir

import "testing"

func TestTransformLaws(t *testing.T) {
	all := []Variance{Covariant, Contravariant, Invariant, Bivariant}

	for _, a := range all {
		if got := Transform(a, Covariant); got != a {
			t.Errorf("xform(%v, Cov) = %v, want identity %v", a, got, a)
		}
	}
	for _, b := range all {
		if got := Transform(Covariant, b); got != b {
			t.Errorf("xform(Cov, %v) = %v, want identity %v", b, got, b)
		}
	}
	for _, b := range all {
		if got := Transform(Invariant, b); got != Invariant {
			t.Errorf("xform(Inv, %v) = %v, want Inv", b, got)
		}
	}
	for _, b := range all {
		if got := Transform(Bivariant, b); got != Bivariant {
			t.Errorf("xform(Biv, %v) = %v, want Biv", b, got)
		}
	}
}

func TestTransformTable(t *testing.T) {
	tests := []struct {
		a, b, want Variance
	}{
		{Contravariant, Contravariant, Covariant},
		{Contravariant, Invariant, Invariant},
		{Contravariant, Bivariant, Bivariant},
		{Invariant, Contravariant, Invariant},
	}
	for _, tt := range tests {
		if got := Transform(tt.a, tt.b); got != tt.want {
			t.Errorf("xform(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGLB(t *testing.T) {
	all := []Variance{Covariant, Contravariant, Invariant, Bivariant}

	// Commutative.
	for _, a := range all {
		for _, b := range all {
			if GLB(a, b) != GLB(b, a) {
				t.Errorf("GLB(%v, %v) != GLB(%v, %v)", a, b, b, a)
			}
		}
	}
	// Idempotent.
	for _, a := range all {
		if GLB(a, a) != a {
			t.Errorf("GLB(%v, %v) = %v, want %v", a, a, GLB(a, a), a)
		}
	}
	// Bivariant identity.
	for _, a := range all {
		if GLB(a, Bivariant) != a {
			t.Errorf("GLB(%v, Biv) = %v, want %v", a, GLB(a, Bivariant), a)
		}
	}
	// Invariant absorbing.
	for _, a := range all {
		if GLB(a, Invariant) != Invariant {
			t.Errorf("GLB(%v, Inv) = %v, want Inv", a, GLB(a, Invariant))
		}
	}
	// Associative, spot-checked.
	if GLB(Covariant, GLB(Contravariant, Bivariant)) != GLB(GLB(Covariant, Contravariant), Bivariant) {
		t.Errorf("GLB is not associative on (Cov, Contra, Biv)")
	}
	if GLB(Covariant, Contravariant) != Invariant {
		t.Errorf("GLB(Cov, Contra) = %v, want Inv", GLB(Covariant, Contravariant))
	}
}
