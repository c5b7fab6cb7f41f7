package typeir

import "github.com/tamewild/variance/internal/diagnostics"

// ItemID names a top-level or nested declaration. It is opaque to the
// pass — only the surrounding compiler's resolution layer knows how to
// turn one back into source.
type ItemID string

// ParamID names a single type or lifetime parameter declaration site. It
// is what a bare parameter reference in a type carries (spec §3,
// "param_id — node identifier used by type references to name the
// parameter").
type ParamID string

// ItemKind tags what kind of declaration an Item is. Only Enum, Struct,
// and Trait can declare variance-bearing parameters (spec §1); the rest
// allocate nothing but are still walked for nested items.
type ItemKind int

const (
	EnumItem ItemKind = iota
	StructItem
	TraitItem
	ImplItem
	FnItem
	StaticItem
	AliasItem
	ModuleItem
	ForeignItem
)

func (k ItemKind) String() string {
	switch k {
	case EnumItem:
		return "enum"
	case StructItem:
		return "struct"
	case TraitItem:
		return "trait"
	case ImplItem:
		return "impl"
	case FnItem:
		return "fn"
	case StaticItem:
		return "static"
	case AliasItem:
		return "alias"
	case ModuleItem:
		return "module"
	case ForeignItem:
		return "foreign"
	default:
		return "unknown"
	}
}

// TypeParamDef and RegionParamDef are one declared generic parameter of an
// item, in declaration order.
type TypeParamDef struct {
	ParamID ParamID
	Name    string
}

type RegionParamDef struct {
	ParamID ParamID
	Name    string
}

// Generics enumerates the declared parameters of an item, as returned by
// the TypeContext oracle's item_type(item)/trait_def(item) calls (spec
// §6). Lifetimes come before Types to mirror the declaration order the
// indexer relies on (spec §4.3).
type Generics struct {
	Lifetimes []RegionParamDef
	Types     []TypeParamDef
}

// Variant is one constructor case of an enum, exposing only its argument
// types — never its discriminant expression (spec §4.3, §9's "discriminant
// evaluation hazard").
type Variant struct {
	Name     string
	ArgTypes []Type
}

// Field is one struct field.
type Field struct {
	Name string
	Type Type
}

// Method is one trait method. TransformedSelfType is the receiver's
// logical self type with any reference/mutability wrapper already
// stripped away by the oracle — usually SelfType{} — since the
// contravariant transform that receiver position applies is supplied by
// the generator's seed, not by traversing a literal `&mut Self`.
// TransformedSelfType is nil for methods with no receiver (e.g.
// associated functions); Signature never includes the receiver.
type Method struct {
	Name                string
	TransformedSelfType Type
	Signature           FuncType
}

// Item is one declaration in the program. Kind determines whether the
// indexer and constraint generator treat it as variance-bearing; Children
// holds nested items (e.g. functions inside an impl block, or items inside
// a module) that are walked but, per their own Kind, may allocate nothing.
type Item struct {
	ID       ItemID
	Kind     ItemKind
	Name     string
	Span     diagnostics.Span
	Children []*Item
}

// Program is the consumed "iterable of top-level items" of spec §6.
type Program interface {
	Items() []*Item
}

// WalkItems visits every item in the program depth-first, including
// nested items, in declaration order. It stops and returns the first
// error a visit function produces.
func WalkItems(prog Program, visit func(*Item) error) error {
	for _, item := range prog.Items() {
		if err := walkItem(item, visit); err != nil {
			return err
		}
	}
	return nil
}

func walkItem(item *Item, visit func(*Item) error) error {
	if err := visit(item); err != nil {
		return err
	}
	for _, child := range item.Children {
		if err := walkItem(child, visit); err != nil {
			return err
		}
	}
	return nil
}
