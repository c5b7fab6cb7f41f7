package variance

import (
	"testing"

	"github.com/tamewild/variance/internal/typeir"
)

func TestPublishGroupsContiguousRecordsPerItem(t *testing.T) {
	pool := NewPool()
	records := []InferredRecord{
		{Item: "Iter", Kind: SelfParamKind, Pos: 0, Param: "Iter", Term: pool.Inferred(0)},
		{Item: "Iter", Kind: TypeParamKind, Pos: 0, Param: "Iter::X", Term: pool.Inferred(1)},
		{Item: "Option", Kind: TypeParamKind, Pos: 0, Param: "Option::A", Term: pool.Inferred(2)},
	}
	solutions := []typeir.Variance{typeir.Contravariant, typeir.Covariant, typeir.Covariant}

	vm := typeir.NewMemoryVarianceMap()
	if err := Publish(records, solutions, vm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	iter, ok := vm.Get("Iter")
	if !ok {
		t.Fatalf("expected an entry for Iter")
	}
	if iter.SelfParam == nil || *iter.SelfParam != typeir.Contravariant {
		t.Errorf("Iter.SelfParam = %v, want Contravariant", iter.SelfParam)
	}
	if len(iter.TypeParams) != 1 || iter.TypeParams[0] != typeir.Covariant {
		t.Errorf("Iter.TypeParams = %v, want [Covariant]", iter.TypeParams)
	}

	option, ok := vm.Get("Option")
	if !ok {
		t.Fatalf("expected an entry for Option")
	}
	if option.SelfParam != nil {
		t.Errorf("Option.SelfParam = %v, want nil", option.SelfParam)
	}
	if len(option.TypeParams) != 1 || option.TypeParams[0] != typeir.Covariant {
		t.Errorf("Option.TypeParams = %v, want [Covariant]", option.TypeParams)
	}
}

func TestPublishRejectsDuplicateInstall(t *testing.T) {
	pool := NewPool()
	records := []InferredRecord{
		{Item: "Option", Kind: TypeParamKind, Pos: 0, Param: "Option::A", Term: pool.Inferred(0)},
	}
	solutions := []typeir.Variance{typeir.Covariant}

	vm := typeir.NewMemoryVarianceMap()
	if err := vm.Install("Option", typeir.ItemVariances{}); err != nil {
		t.Fatalf("unexpected error on pre-seed install: %v", err)
	}
	err := Publish(records, solutions, vm)
	if err == nil {
		t.Fatalf("expected an error for duplicate install")
	}
}
