package variance

import (
	"github.com/kr/pretty"

	"github.com/tamewild/variance/internal/config"
	"github.com/tamewild/variance/internal/typeir"
)

// reportDebugAttributes implements the rustc_variance marker-attribute
// hook of spec §4.6. It is test-suite plumbing only: it reports through
// the diagnostics sink and never influences the solved result.
func reportDebugAttributes(tc typeir.TypeContext, prog typeir.Program, vm typeir.VarianceMap) {
	sink := tc.Diagnostics()
	_ = typeir.WalkItems(prog, func(item *typeir.Item) error {
		if !tc.HasAttribute(item.ID, config.DebugAttributeName) {
			return nil
		}
		iv, ok := vm.Get(item.ID)
		if !ok {
			sink.Report(item.Span, "variances: <none>")
			return nil
		}
		sink.Report(item.Span, "variances: "+pretty.Sprint(renderableVariances(iv)))
		return nil
	})
}

// renderableVariances flattens ItemVariances' self-parameter pointer into
// a plain value before handing it to kr/pretty. Under config.IsTestMode
// the raw pointer would otherwise print its process address, making
// golden test output nondeterministic across runs.
func renderableVariances(iv typeir.ItemVariances) any {
	if !config.IsTestMode || iv.SelfParam == nil {
		return iv
	}
	return struct {
		SelfParam    typeir.Variance
		TypeParams   []typeir.Variance
		RegionParams []typeir.Variance
	}{*iv.SelfParam, iv.TypeParams, iv.RegionParams}
}
