package cells

import "golang.org/x/exp/constraints"

// Category is the structural class of a backing container.
type Category uint8

const (
	// NoCategory is the zero value and never returned for a valid backing.
	NoCategory Category = iota
	// ArrayLike backings have a fixed maximum capacity; their logical size is
	// tracked separately and may be anything up to the capacity.
	ArrayLike
	// VectorLike backings grow and shrink without bounds.
	VectorLike
	// MapLike backings are sparse: they store only cells which differ from
	// the zero value, keyed by an unsigned cell index.
	MapLike
)

func (c Category) String() string {
	switch c {
	case ArrayLike:
		return "array"
	case VectorLike:
		return "vector"
	case MapLike:
		return "map"
	}
	return "<none>"
}

// Number is the constraint for cell types which are accumulated into by plain
// arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Key is the constraint for the key type of map-like backings. Only unsigned
// integral keys are able to address cells.
type Key interface {
	constraints.Unsigned
}

// Backing is the structural contract a container has to fulfil to be used as
// cell storage. It is implemented by Vector, Array and Map.
//
// Category must not depend on the receiver's state; it has to answer for a nil
// receiver as well. Container types which do not implement Backing cannot be
// used to instantiate a Storage.
type Backing[V comparable] interface {
	// Reset re-initializes the backing to n cells of zero value.
	Reset(n int) error
	// Set writes cell i.
	Set(i int, v V)
	// At reads cell i.
	At(i int) V
	// Len is the logical number of cells.
	Len() int
	Category() Category
	Check() error
}

// Source is the minimal read-only contract of a storage: a number of cells and
// indexed access to them. Storage operations which combine two storages accept
// any Source.
type Source[V any] interface {
	Len() int
	At(i int) V
}

// CategoryOf classifies a backing type. No instance is involved.
func CategoryOf[V comparable, B Backing[V]]() Category {
	var b B
	return b.Category()
}

var (
	_ Backing[int]  = (*Vector[int])(nil)
	_ Backing[int]  = (*Array[int])(nil)
	_ Backing[int]  = (*Map[uint, int])(nil)
	_ Source[int]   = (*Vector[int])(nil)
	_ Source[uint8] = (*Map[uint8, uint8])(nil)
)
