package variance

import "github.com/tamewild/variance/internal/typeir"

// ExternalUnits is the collaborator spec §6 calls "item_variances(cross_unit_item)":
// a read-only source of already-solved variances for items defined outside
// the current compilation unit. The core pass never depends on this
// directly — a TypeContext implementation wires it in to serve
// ItemVariances lookups for non-local items (spec §4.4.1, §9 "Cross-unit
// lookup"). internal/unitcache provides a persisted, sqlite-backed
// implementation. internal/fixture does not implement this interface; its
// Context serves external variances directly from ItemVariances.
type ExternalUnits interface {
	// Lookup returns the solved variances for item, and whether an entry
	// was found at all. A miss here is a precondition violation the
	// caller is expected to have ruled out before running the pass (spec
	// §9): every transitive dependency's variances must already be
	// populated.
	Lookup(item typeir.ItemID) (typeir.ItemVariances, bool)
}
