package typeir

// Type is a resolved type value, already past unification — the pass never
// sees an inference variable that hasn't been pinned down (spec §1
// Non-goals, §7). Each concrete shape below corresponds to one row of the
// traversal table in spec §4.4.
type Type interface {
	typeNode()
}

// Primitive is a leaf type (Int, Bool, unit, ...) that contributes no
// constraint.
type Primitive struct {
	Name string
}

func (Primitive) typeNode() {}

// MutType pairs a type with whether it sits behind a mutable cell.
// Mutation forces invariance because the parameter occurs in both read
// and write positions (spec §4.4, `emit_mutable`). It is not itself a Type
// — it is the payload carried by the indirect type shapes below.
type MutType struct {
	Elem    Type
	Mutable bool
}

// RefType is a borrowed reference to Elem under Region (e.g. `&'r T` /
// `&'r mut T`).
type RefType struct {
	Region Region
	Elem   MutType
}

func (RefType) typeNode() {}

// IndirectKind distinguishes the three indirect-pointer shapes that share
// identical variance treatment (spec §4.4, "Owned/boxed/raw pointer to T").
type IndirectKind int

const (
	OwnedIndirect IndirectKind = iota
	BoxedIndirect
	RawIndirect
)

// IndirectType is an owned box, a raw pointer, or similar, to Elem.
type IndirectType struct {
	Kind IndirectKind
	Elem MutType
}

func (IndirectType) typeNode() {}

// Storage is the backing storage of a slice/array view or a string view
// (spec §4.4's vstore). FixedStorage and OwnedStorage/BoxStorage contribute
// nothing; SliceStorage carries a borrow region that does.
type Storage interface {
	storageNode()
}

type FixedStorage struct{}

func (FixedStorage) storageNode() {}

type OwnedStorage struct{}

func (OwnedStorage) storageNode() {}

type BoxStorage struct{}

func (BoxStorage) storageNode() {}

type SliceStorage struct {
	Region Region
}

func (SliceStorage) storageNode() {}

// SliceType is a slice or array view of Elem backed by Storage.
type SliceType struct {
	Storage Storage
	Elem    MutType
}

func (SliceType) typeNode() {}

// StringType is a string view backed by Storage. It has no element type of
// its own to recurse into.
type StringType struct {
	Storage Storage
}

func (StringType) typeNode() {}

// TupleType is a fixed-arity product type.
type TupleType struct {
	Elems []Type
}

func (TupleType) typeNode() {}

// NamedType applies a declared enum, struct, or trait to substitutions
// (spec §4.4.1). ItemKind records what kind of item the target is; the
// generator does not consult it, since it resolves declared variances
// from the indexer's records for local targets and from ItemVariances for
// external ones.
type NamedType struct {
	Item          ItemID
	ItemKind      ItemKind
	TypeArgs      []Type
	RegionArgs    []Region
	RegionsErased bool
}

func (NamedType) typeNode() {}

// ParamType is a bare reference to a type parameter. If the parameter is
// not present in the inferred map it is a method-scoped parameter and is
// silently ignored (spec §4.4's table, §9 Open Questions).
type ParamType struct {
	Param ParamID
}

func (ParamType) typeNode() {}

// SelfType is a reference to the implicit Self of the enclosing trait.
type SelfType struct{}

func (SelfType) typeNode() {}

// FuncType is a bare (non-closure) function type.
type FuncType struct {
	Params []Type
	Return Type
}

func (FuncType) typeNode() {}

// ClosureType is a function type that additionally captures a borrow
// region (spec §4.4, "Closure with region r and signature σ").
type ClosureType struct {
	Region Region
	Params []Type
	Return Type
}

func (ClosureType) typeNode() {}

// PlaceholderType is an unresolved inference variable. It should never
// reach the pass (spec §1 Non-goals, §7).
type PlaceholderType struct{}

func (PlaceholderType) typeNode() {}

// ErrorType is the sentinel type standing in for a type error already
// reported elsewhere.
type ErrorType struct{}

func (ErrorType) typeNode() {}

// OpaqueInternalType covers the remaining compiler-internal type
// representations (opaque boxes, opaque closure pointers, unboxed vectors
// in the original implementation's terms) that never appear in a
// resolved, user-visible type.
type OpaqueInternalType struct {
	Label string
}

func (OpaqueInternalType) typeNode() {}
