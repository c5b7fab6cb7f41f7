package variance

import (
	"github.com/tamewild/variance/internal/diagnostics"
	"github.com/tamewild/variance/internal/typeir"
)

// InferredIndex is a dense identifier for one variance-bearing parameter,
// assigned in the order the Indexer discovers it (spec §2).
type InferredIndex int

// ParamKind tags which of the three kinds of parameter an inferred record
// names (spec §3: Type, Region, or the implicit Self of a trait).
type ParamKind int

const (
	TypeParamKind ParamKind = iota
	RegionParamKind
	SelfParamKind
)

// InferredRecord is the per-index bookkeeping the generator and publisher
// consult: which item declared the parameter, what kind and ordinal it is,
// the node identifier a type reference uses to name it, and the leaf term
// representing V(index).
type InferredRecord struct {
	Item  typeir.ItemID
	Kind  ParamKind
	Pos   int
	Param typeir.ParamID
	Term  *Term
}

// Indexer walks a program's items and assigns each variance-bearing
// parameter a contiguous InferredIndex (spec §4.3).
type Indexer struct {
	tc   typeir.TypeContext
	vm   typeir.VarianceMap
	pool *Pool

	records []InferredRecord
	byParam map[typeir.ParamID]InferredIndex
	bySelf  map[typeir.ItemID]InferredIndex
}

// NewIndexer returns an Indexer that allocates its leaf terms from pool
// and installs zero-parameter items directly into vm.
func NewIndexer(tc typeir.TypeContext, vm typeir.VarianceMap, pool *Pool) *Indexer {
	return &Indexer{
		tc:      tc,
		vm:      vm,
		pool:    pool,
		byParam: make(map[typeir.ParamID]InferredIndex),
		bySelf:  make(map[typeir.ItemID]InferredIndex),
	}
}

// Records returns the inferred table built so far, in index order.
func (ix *Indexer) Records() []InferredRecord {
	return ix.records
}

// IndexOfParam returns the inferred index assigned to a type- or
// region-parameter's param id, if one was allocated.
func (ix *Indexer) IndexOfParam(p typeir.ParamID) (InferredIndex, bool) {
	i, ok := ix.byParam[p]
	return i, ok
}

// IndexOfSelf returns the inferred index assigned to a trait's implicit
// Self parameter, if one was allocated.
func (ix *Indexer) IndexOfSelf(item typeir.ItemID) (InferredIndex, bool) {
	i, ok := ix.bySelf[item]
	return i, ok
}

func (ix *Indexer) allocate(item typeir.ItemID, kind ParamKind, pos int, param typeir.ParamID) InferredIndex {
	index := InferredIndex(len(ix.records))
	ix.records = append(ix.records, InferredRecord{
		Item:  item,
		Kind:  kind,
		Pos:   pos,
		Param: param,
		Term:  ix.pool.Inferred(index),
	})
	return index
}

// Run walks every item in prog, allocating inferreds for variance-bearing
// items and installing empty entries for items with no generics at all.
// It returns a fatal diagnostics.Error if the same parameter id is indexed
// twice (an internal consistency violation, spec §7).
func (ix *Indexer) Run(prog typeir.Program) error {
	return typeir.WalkItems(prog, func(item *typeir.Item) error {
		return ix.visit(item)
	})
}

func (ix *Indexer) visit(item *typeir.Item) error {
	switch item.Kind {
	case typeir.EnumItem, typeir.StructItem:
		return ix.indexGenerics(item, false)
	case typeir.TraitItem:
		return ix.indexGenerics(item, true)
	default:
		// Implementations, free functions, statics, aliases, modules, and
		// foreign blocks cannot declare variance-bearing parameters, but
		// WalkItems already recurses into their children for us.
		return nil
	}
}

func (ix *Indexer) indexGenerics(item *typeir.Item, isTrait bool) error {
	if isTrait {
		if _, dup := ix.bySelf[item.ID]; dup {
			return diagnostics.Bugf(diagnostics.ErrDuplicateInferredIndex, item.Span,
				"duplicate Self inferred for item %q", item.ID)
		}
		index := ix.allocate(item.ID, SelfParamKind, 0, typeir.ParamID(item.ID))
		ix.bySelf[item.ID] = index
	}

	var generics typeir.Generics
	if isTrait {
		generics = ix.tc.TraitGenerics(item.ID)
	} else {
		generics = ix.tc.ItemGenerics(item.ID)
	}

	for pos, region := range generics.Lifetimes {
		if err := ix.allocateParam(item, RegionParamKind, pos, region.ParamID); err != nil {
			return err
		}
	}
	for pos, typ := range generics.Types {
		if err := ix.allocateParam(item, TypeParamKind, pos, typ.ParamID); err != nil {
			return err
		}
	}

	if !isTrait && len(generics.Lifetimes) == 0 && len(generics.Types) == 0 {
		// No generics at all: install an empty entry now so later lookups
		// can distinguish "unknown item" from "known item, zero params".
		if err := ix.vm.Install(item.ID, typeir.ItemVariances{}); err != nil {
			return diagnostics.Bugf(diagnostics.ErrDuplicateVarianceMapEntry, item.Span,
				"%v", err)
		}
	}
	return nil
}

func (ix *Indexer) allocateParam(item *typeir.Item, kind ParamKind, pos int, param typeir.ParamID) error {
	if _, dup := ix.byParam[param]; dup {
		return diagnostics.Bugf(diagnostics.ErrDuplicateInferredIndex, item.Span,
			"duplicate inferred index for parameter %q of item %q", param, item.ID)
	}
	index := ix.allocate(item.ID, kind, pos, param)
	ix.byParam[param] = index
	return nil
}
