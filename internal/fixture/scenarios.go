package fixture

import "github.com/tamewild/variance/internal/typeir"

// Scenario names one of the canned programs below, paired with the item
// whose variances a driver cares about (spec §8, "End-to-end scenarios").
type Scenario struct {
	Name    string
	Context *Context
	Item    typeir.ItemID
}

// Scenarios returns the six end-to-end programs spec §8 names, each
// built as its own Context. All but Iter hold a single item; Iter's also
// holds the local Option it returns.
func Scenarios() []Scenario {
	return []Scenario{
		{"Option", OptionScenario(), "Option"},
		{"OptFn", OptFnScenario(), "OptFn"},
		{"OptMap", OptMapScenario(), "OptMap"},
		{"Phantom", PhantomScenario(), "Phantom"},
		{"Cell", CellScenario(), "Cell"},
		{"Iter", IterScenario(), "Iter"},
	}
}

// OptionScenario builds `enum Option<A> { Some(A), None }`.
func OptionScenario() *Context {
	return New().AddEnum("Option",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "Option::A", Name: "A"}}},
		[]typeir.Variant{
			{Name: "Some", ArgTypes: []typeir.Type{typeir.ParamType{Param: "Option::A"}}},
			{Name: "None"},
		})
}

// OptFnScenario builds `enum OptFn<B> { Some(fn(B)), None }`.
func OptFnScenario() *Context {
	return New().AddEnum("OptFn",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "OptFn::B", Name: "B"}}},
		[]typeir.Variant{
			{Name: "Some", ArgTypes: []typeir.Type{typeir.FuncType{
				Params: []typeir.Type{typeir.ParamType{Param: "OptFn::B"}},
				Return: typeir.Primitive{Name: "()"},
			}}},
			{Name: "None"},
		})
}

// OptMapScenario builds `enum OptMap<C> { Some(fn(C) -> C), None }`.
func OptMapScenario() *Context {
	return New().AddEnum("OptMap",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "OptMap::C", Name: "C"}}},
		[]typeir.Variant{
			{Name: "Some", ArgTypes: []typeir.Type{typeir.FuncType{
				Params: []typeir.Type{typeir.ParamType{Param: "OptMap::C"}},
				Return: typeir.ParamType{Param: "OptMap::C"},
			}}},
			{Name: "None"},
		})
}

// PhantomScenario builds `struct Phantom<T> { }`.
func PhantomScenario() *Context {
	return New().AddStruct("Phantom",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "Phantom::T", Name: "T"}}},
		nil)
}

// CellScenario builds `struct Cell<T> { value: &mut T }`.
func CellScenario() *Context {
	return New().AddStruct("Cell",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "Cell::T", Name: "T"}}},
		[]typeir.Field{
			{Name: "value", Type: typeir.RefType{
				Region: typeir.StaticRegion{},
				Elem:   typeir.MutType{Elem: typeir.ParamType{Param: "Cell::T"}, Mutable: true},
			}},
		})
}

// IterScenario builds `trait Iter<X> { fn next(&mut self) -> Option<X> }`,
// plus the local Option it returns.
func IterScenario() *Context {
	c := New().AddTrait("Iter",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "Iter::X", Name: "X"}}},
		[]typeir.Method{
			{
				Name:                "next",
				TransformedSelfType: typeir.SelfType{},
				Signature: typeir.FuncType{
					Return: typeir.NamedType{
						Item:     "Option",
						ItemKind: typeir.EnumItem,
						TypeArgs: []typeir.Type{typeir.ParamType{Param: "Iter::X"}},
					},
				},
			},
		})
	c.AddEnum("Option",
		typeir.Generics{Types: []typeir.TypeParamDef{{ParamID: "Option::A", Name: "A"}}},
		[]typeir.Variant{
			{Name: "Some", ArgTypes: []typeir.Type{typeir.ParamType{Param: "Option::A"}}},
			{Name: "None"},
		})
	return c
}
