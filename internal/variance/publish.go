package variance

import (
	"github.com/tamewild/variance/internal/diagnostics"
	"github.com/tamewild/variance/internal/typeir"
)

// Publish walks records in index order and groups contiguous runs into one
// ItemVariances per item, installing each into vm (spec §4.5,
// "Publication"). It relies on the Indexer's contiguous-index invariant:
// all inferreds for one item appear together in the walk.
func Publish(records []InferredRecord, solutions []typeir.Variance, vm typeir.VarianceMap) error {
	i := 0
	for i < len(records) {
		item := records[i].Item
		var iv typeir.ItemVariances
		selfSeen := false

		for i < len(records) && records[i].Item == item {
			r := records[i]
			v := solutions[i]
			switch r.Kind {
			case SelfParamKind:
				if selfSeen {
					return diagnostics.Bugf(diagnostics.ErrDuplicateVarianceMapEntry, diagnostics.Span{},
						"item %q declares more than one Self inferred", item)
				}
				selfSeen = true
				vv := v
				iv.SelfParam = &vv
			case RegionParamKind:
				iv.RegionParams = append(iv.RegionParams, v)
			case TypeParamKind:
				iv.TypeParams = append(iv.TypeParams, v)
			}
			i++
		}

		if err := vm.Install(item, iv); err != nil {
			return diagnostics.Bugf(diagnostics.ErrDuplicateVarianceMapEntry, diagnostics.Span{}, "%v", err)
		}
	}
	return nil
}
