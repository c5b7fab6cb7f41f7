package unitcache

import (
	"testing"

	"github.com/tamewild/variance/internal/typeir"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestPutGetRoundTrips(t *testing.T) {
	c := openTestCache(t)
	cov := typeir.Covariant
	want := typeir.ItemVariances{
		SelfParam:  &cov,
		TypeParams: []typeir.Variance{typeir.Contravariant, typeir.Invariant},
	}
	if err := c.Put("unit-a", "Iter", want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := c.Get("unit-a", "Iter")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected a hit")
	}
	if got.SelfParam == nil || *got.SelfParam != typeir.Covariant {
		t.Errorf("SelfParam = %v, want Covariant", got.SelfParam)
	}
	if len(got.TypeParams) != 2 || got.TypeParams[0] != typeir.Contravariant || got.TypeParams[1] != typeir.Invariant {
		t.Errorf("TypeParams = %v, want [Contravariant Invariant]", got.TypeParams)
	}
}

func TestGetMissReturnsFalse(t *testing.T) {
	c := openTestCache(t)
	_, ok, err := c.Get("unit-a", "Nope")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Errorf("expected a miss")
	}
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("unit-a", "Option", typeir.ItemVariances{TypeParams: []typeir.Variance{typeir.Covariant}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.Put("unit-a", "Option", typeir.ItemVariances{TypeParams: []typeir.Variance{typeir.Invariant}}); err != nil {
		t.Fatalf("Put (overwrite): %v", err)
	}

	got, ok, err := c.Get("unit-a", "Option")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || len(got.TypeParams) != 1 || got.TypeParams[0] != typeir.Invariant {
		t.Errorf("got = %+v, want single Invariant TypeParam", got)
	}
}

func TestUnitViewLookupImplementsExternalUnits(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put("unit-a", "Option", typeir.ItemVariances{TypeParams: []typeir.Variance{typeir.Covariant}}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	view := c.View("unit-a")
	iv, ok := view.Lookup("Option")
	if !ok {
		t.Fatalf("expected a hit through UnitView")
	}
	if len(iv.TypeParams) != 1 || iv.TypeParams[0] != typeir.Covariant {
		t.Errorf("iv.TypeParams = %v, want [Covariant]", iv.TypeParams)
	}

	if _, ok := view.Lookup("Missing"); ok {
		t.Errorf("expected a miss for an unknown item")
	}
}
