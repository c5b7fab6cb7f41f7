package typeir

import "github.com/tamewild/variance/internal/diagnostics"

// TypeContext is the oracle the pass consumes from the surrounding
// compiler's item/type resolution layer (spec §6). It is the only way the
// pass looks at program structure; everything it returns is assumed
// already resolved (no inference placeholders, no unevaluated
// discriminants).
type TypeContext interface {
	// EnumVariants returns item's variant argument types without forcing
	// evaluation of any discriminant expression (spec §9).
	EnumVariants(item ItemID) []Variant

	// StructFields returns item's fields.
	StructFields(item ItemID) []Field

	// TraitMethods returns item's declared methods.
	TraitMethods(item ItemID) []Method

	// ItemGenerics returns the declared generics of an enum or struct, or
	// of an enum/struct/trait being referenced as a NamedType
	// substitution target (spec §6's item_type(item)).
	ItemGenerics(item ItemID) Generics

	// TraitGenerics returns the declared generics of a trait, not
	// counting the implicit Self parameter (spec §6's trait_def(item)).
	TraitGenerics(item ItemID) Generics

	// ItemVariances returns the already-solved variances of an item
	// defined in another compilation unit (spec §4.4.1). The pass assumes
	// this is populated for every transitive dependency before it runs
	// (spec §9, "Cross-unit lookup").
	ItemVariances(item ItemID) ItemVariances

	// HasAttribute reports whether item carries the named marker
	// attribute (spec §4.6 uses this for the "rustc_variance" hook).
	HasAttribute(item ItemID, name string) bool

	// IsLocal reports whether item is defined in the current compilation
	// unit. Locally-defined items route substitution lookups through the
	// inferred map instead of ItemVariances (spec §4.4.1).
	IsLocal(item ItemID) bool

	// Diagnostics returns the sink fatal bugs and the debug hook report
	// through.
	Diagnostics() diagnostics.Sink
}
