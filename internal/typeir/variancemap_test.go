package typeir

import "testing"

func TestMemoryVarianceMapInstallAndGet(t *testing.T) {
	m := NewMemoryVarianceMap()
	cov := Covariant

	if m.Has("Option") {
		t.Fatalf("fresh map should not have an entry yet")
	}

	err := m.Install("Option", ItemVariances{TypeParams: []Variance{cov}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := m.Get("Option")
	if !ok {
		t.Fatalf("expected entry to be present")
	}
	if len(got.TypeParams) != 1 || got.TypeParams[0] != Covariant {
		t.Errorf("got = %+v, want TypeParams=[Covariant]", got)
	}
}

func TestMemoryVarianceMapRejectsDuplicateInstall(t *testing.T) {
	m := NewMemoryVarianceMap()
	if err := m.Install("Option", ItemVariances{}); err != nil {
		t.Fatalf("unexpected error on first install: %v", err)
	}
	err := m.Install("Option", ItemVariances{})
	if err == nil {
		t.Fatalf("expected an error on duplicate install")
	}
	if _, ok := err.(*DuplicateInstallError); !ok {
		t.Errorf("err = %T, want *DuplicateInstallError", err)
	}
}
