// Package fixture builds small, in-memory typeir.Program/TypeContext
// pairs for exercising the variance pass without a real parser or
// resolver behind it — the role spec §6 assigns to "the surrounding
// compiler". It is consumed by tests across packages and by cmd/varcheck.
package fixture

import (
	"github.com/tamewild/variance/internal/diagnostics"
	"github.com/tamewild/variance/internal/typeir"
)

// Context is a hand-built typeir.Program and typeir.TypeContext over a
// small, in-memory set of items. Populate it with the Add* methods, then
// pass it to variance.InferVariance as both the program and the oracle.
type Context struct {
	items    []*typeir.Item
	generics map[typeir.ItemID]typeir.Generics
	traitGen map[typeir.ItemID]typeir.Generics
	variants map[typeir.ItemID][]typeir.Variant
	fields   map[typeir.ItemID][]typeir.Field
	methods  map[typeir.ItemID][]typeir.Method
	external map[typeir.ItemID]typeir.ItemVariances
	locals   map[typeir.ItemID]bool
	attrs    map[typeir.ItemID]map[string]bool
	sink     *diagnostics.Collector
}

// New returns an empty Context ready to be populated.
func New() *Context {
	return &Context{
		generics: map[typeir.ItemID]typeir.Generics{},
		traitGen: map[typeir.ItemID]typeir.Generics{},
		variants: map[typeir.ItemID][]typeir.Variant{},
		fields:   map[typeir.ItemID][]typeir.Field{},
		methods:  map[typeir.ItemID][]typeir.Method{},
		external: map[typeir.ItemID]typeir.ItemVariances{},
		locals:   map[typeir.ItemID]bool{},
		attrs:    map[typeir.ItemID]map[string]bool{},
		sink:     &diagnostics.Collector{},
	}
}

// AddEnum registers a local enum with the given generics and variants.
func (c *Context) AddEnum(id typeir.ItemID, generics typeir.Generics, variants []typeir.Variant) *Context {
	c.items = append(c.items, &typeir.Item{ID: id, Kind: typeir.EnumItem})
	c.generics[id] = generics
	c.variants[id] = variants
	c.locals[id] = true
	return c
}

// AddStruct registers a local struct with the given generics and fields.
func (c *Context) AddStruct(id typeir.ItemID, generics typeir.Generics, fields []typeir.Field) *Context {
	c.items = append(c.items, &typeir.Item{ID: id, Kind: typeir.StructItem})
	c.generics[id] = generics
	c.fields[id] = fields
	c.locals[id] = true
	return c
}

// AddTrait registers a local trait with the given (non-Self) generics and
// methods.
func (c *Context) AddTrait(id typeir.ItemID, generics typeir.Generics, methods []typeir.Method) *Context {
	c.items = append(c.items, &typeir.Item{ID: id, Kind: typeir.TraitItem})
	c.traitGen[id] = generics
	c.methods[id] = methods
	c.locals[id] = true
	return c
}

// AddExternal registers variances already solved outside this unit, so
// substitution traversal reads them as constants instead of symbolic
// inferreds (spec §4.4.1).
func (c *Context) AddExternal(id typeir.ItemID, variances typeir.ItemVariances) *Context {
	c.external[id] = variances
	c.locals[id] = false
	return c
}

// MarkDebug flags item with the rustc_variance marker attribute (spec
// §4.6).
func (c *Context) MarkDebug(id typeir.ItemID) *Context {
	if c.attrs[id] == nil {
		c.attrs[id] = map[string]bool{}
	}
	c.attrs[id][debugAttributeName] = true
	return c
}

const debugAttributeName = "rustc_variance"

// Reports returns the non-fatal debug reports collected by the sink.
func (c *Context) Reports() []diagnostics.Report {
	return c.sink.Reports
}

// Items implements typeir.Program.
func (c *Context) Items() []*typeir.Item { return c.items }

func (c *Context) EnumVariants(item typeir.ItemID) []typeir.Variant { return c.variants[item] }
func (c *Context) StructFields(item typeir.ItemID) []typeir.Field   { return c.fields[item] }
func (c *Context) TraitMethods(item typeir.ItemID) []typeir.Method  { return c.methods[item] }
func (c *Context) ItemGenerics(item typeir.ItemID) typeir.Generics  { return c.generics[item] }
func (c *Context) TraitGenerics(item typeir.ItemID) typeir.Generics { return c.traitGen[item] }

func (c *Context) ItemVariances(item typeir.ItemID) typeir.ItemVariances {
	return c.external[item]
}

func (c *Context) HasAttribute(item typeir.ItemID, name string) bool {
	return c.attrs[item] != nil && c.attrs[item][name]
}

func (c *Context) IsLocal(item typeir.ItemID) bool { return c.locals[item] }

func (c *Context) Diagnostics() diagnostics.Sink { return c.sink }
