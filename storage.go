package cells

import "fmt"

// Storage is the uniform cell storage of a histogram. It owns exactly one
// backing B of cells of type V, and accumulates into the cells through the
// element adaptor E. W is the type of weights for Add.
//
// The facade never resizes implicitly: clients have to Reset a storage to the
// intended number of cells before accumulating into it.
//
// Reading a cell always returns a copy, for every category of backing. Clients
// cannot mutate cells through the result of At.
type Storage[V comparable, W any, B Backing[V], E Element[V, W]] struct {
	back B
	elem E
}

// Dense is a storage of numeric cells held in a growable slice.
type Dense[V Number] = Storage[V, V, *Vector[V], Arithmetic[V]]

// Fixed is a storage of numeric cells held in a buffer of fixed capacity.
type Fixed[V Number] = Storage[V, V, *Array[V], Arithmetic[V]]

// Sparse is a storage of numeric cells held in a map.
type Sparse[K Key, V Number] = Storage[V, V, *Map[K, V], Arithmetic[V]]

// NewDense creates an empty dense storage of numbers.
func NewDense[V Number]() *Dense[V] {
	return Adapt[V](NewVector[V]())
}

// NewFixed creates an empty storage of numbers with a fixed capacity.
func NewFixed[V Number](capacity int) *Fixed[V] {
	return Adapt[V](NewArray[V](capacity))
}

// NewSparse creates an empty sparse storage of numbers.
func NewSparse[K Key, V Number]() *Sparse[K, V] {
	return Adapt[V](NewMap[K, V]())
}

// Adapt wraps a backing of numeric cells. The storage takes ownership of b.
func Adapt[V Number, B Backing[V]](b B) *Storage[V, V, B, Arithmetic[V]] {
	return &Storage[V, V, B, Arithmetic[V]]{back: b}
}

// AdaptAccumulator wraps a backing of accumulator cells. P is the pointer
// type of V, which has to implement the accumulator methods:
//
//	type ws = accumulators.WeightedSum
//	st := cells.AdaptAccumulator[ws, accumulators.Weight[float64], *ws](cells.NewVector[ws]())
//
// The storage takes ownership of b.
func AdaptAccumulator[V comparable, W any, P Accumulator[V, W], B Backing[V]](b B) *Storage[V, W, B, Invoking[V, W, P]] {
	return &Storage[V, W, B, Invoking[V, W, P]]{back: b}
}

// Backing returns the backing container, e.g. to iterate over the entries of
// a sparse storage.
func (s *Storage[V, W, B, E]) Backing() B {
	return s.back
}

// Category returns the category of the storage's backing.
func (s *Storage[V, W, B, E]) Category() Category {
	return s.back.Category()
}

// Len returns the number of cells.
func (s *Storage[V, W, B, E]) Len() int {
	return s.back.Len()
}

// Reset re-initializes the storage to n cells, all of them zero. This is the
// only operation which changes the number of cells. For a fixed-capacity
// backing, ErrCapacityExceeded is returned if n is too large, and the storage
// is not modified.
func (s *Storage[V, W, B, E]) Reset(n int) error {
	if err := s.back.Reset(n); err != nil {
		return err
	}
	T().P("cells", s.back.Category()).Debugf("reset to %d cells", n)
	return nil
}

// At returns a copy of cell i. i must be within [0, Len()).
func (s *Storage[V, W, B, E]) At(i int) V {
	s.checkIndex(i)
	return s.back.At(i)
}

// Set overwrites cell i. i must be within [0, Len()).
func (s *Storage[V, W, B, E]) Set(i int, v V) {
	s.checkIndex(i)
	s.back.Set(i, v)
}

// Inc increments cell i, without a weight. No other cell is touched.
// i must be within [0, Len()).
func (s *Storage[V, W, B, E]) Inc(i int) {
	s.checkIndex(i)
	v := s.back.At(i)
	s.elem.Inc(&v)
	s.back.Set(i, v)
}

// Add adds weight w to cell i. No other cell is touched.
// i must be within [0, Len()).
func (s *Storage[V, W, B, E]) Add(i int, w W) {
	s.checkIndex(i)
	v := s.back.At(i)
	s.elem.Add(&v, w)
	s.back.Set(i, v) // for sparse backings, a cell back at zero is erased
}

func (s *Storage[V, W, B, E]) checkIndex(i int) {
	assert(i >= 0 && i < s.back.Len(), ErrIndexOutOfBounds, "cell %d of %d", i, s.back.Len())
}

// Check validates the structural invariants of the backing.
func (s *Storage[V, W, B, E]) Check() error {
	if s == nil {
		return fmt.Errorf("%w: nil storage", ErrInvalidStorage)
	}
	return s.back.Check()
}
