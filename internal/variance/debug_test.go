package variance

import (
	"strings"
	"testing"

	"github.com/tamewild/variance/internal/config"
	"github.com/tamewild/variance/internal/typeir"
)

func TestReportDebugAttributesSkipsItemsWithoutMarker(t *testing.T) {
	tc := newFakeContext()
	tc.generics["Option"] = typeir.Generics{
		Types: []typeir.TypeParamDef{{ParamID: "Option::A", Name: "A"}},
	}
	tc.variants["Option"] = []typeir.Variant{
		{Name: "Some", ArgTypes: []typeir.Type{typeir.ParamType{Param: "Option::A"}}},
	}
	prog := &sliceProgramVariance{items: []*typeir.Item{{ID: "Option", Kind: typeir.EnumItem}}}
	vm := typeir.NewMemoryVarianceMap()

	if err := InferVariance(tc, prog, vm, Options{EnableDebugHook: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tc.sink.Reports) != 0 {
		t.Errorf("expected no debug reports, got %v", tc.sink.Reports)
	}
}

func TestDebugHookStaysOffByDefault(t *testing.T) {
	tc := newFakeContext()
	tc.generics["Option"] = typeir.Generics{
		Types: []typeir.TypeParamDef{{ParamID: "Option::A", Name: "A"}},
	}
	tc.variants["Option"] = []typeir.Variant{
		{Name: "Some", ArgTypes: []typeir.Type{typeir.ParamType{Param: "Option::A"}}},
	}
	tc.attrs["Option"] = map[string]bool{config.DebugAttributeName: true}
	prog := &sliceProgramVariance{items: []*typeir.Item{{ID: "Option", Kind: typeir.EnumItem}}}
	vm := typeir.NewMemoryVarianceMap()

	if err := InferVariance(tc, prog, vm, Options{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tc.sink.Reports) != 0 {
		t.Errorf("expected no debug reports with EnableDebugHook unset, got %v", tc.sink.Reports)
	}
}

func TestReportDebugAttributesReportsMarkedItem(t *testing.T) {
	prevTestMode := config.IsTestMode
	config.IsTestMode = true
	defer func() { config.IsTestMode = prevTestMode }()

	tc := newFakeContext()
	tc.generics["Option"] = typeir.Generics{
		Types: []typeir.TypeParamDef{{ParamID: "Option::A", Name: "A"}},
	}
	tc.variants["Option"] = []typeir.Variant{
		{Name: "Some", ArgTypes: []typeir.Type{typeir.ParamType{Param: "Option::A"}}},
	}
	tc.attrs["Option"] = map[string]bool{config.DebugAttributeName: true}
	prog := &sliceProgramVariance{items: []*typeir.Item{{ID: "Option", Kind: typeir.EnumItem}}}
	vm := typeir.NewMemoryVarianceMap()

	if err := InferVariance(tc, prog, vm, Options{EnableDebugHook: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tc.sink.Reports) != 1 {
		t.Fatalf("len(reports) = %d, want 1", len(tc.sink.Reports))
	}
	if !strings.Contains(tc.sink.Reports[0].Message, "variances:") {
		t.Errorf("report message = %q, want it to contain a variances summary", tc.sink.Reports[0].Message)
	}
}
