package cells

import (
	"fmt"
	"iter"
)

// Vector is a vector-like backing: a slice of cells which is resized on
// demand. Its logical size is the length of the slice.
type Vector[V comparable] struct {
	cells []V
}

// NewVector creates an empty vector backing.
func NewVector[V comparable]() *Vector[V] {
	return &Vector[V]{}
}

// VectorOf creates a vector backing which takes ownership of s. Clients must
// not use s any more after the call.
func VectorOf[V comparable](s []V) *Vector[V] {
	return &Vector[V]{cells: s}
}

// Category is VectorLike.
func (v *Vector[V]) Category() Category { return VectorLike }

// Len returns the number of cells.
func (v *Vector[V]) Len() int { return len(v.cells) }

// Reset resizes the vector to n cells, all of them set to the zero value.
// The underlying array is re-used if large enough.
func (v *Vector[V]) Reset(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrIllegalArguments, n)
	}
	if n <= cap(v.cells) {
		v.cells = v.cells[:n]
		clear(v.cells)
		return nil
	}
	v.cells = make([]V, n)
	return nil
}

// At returns cell i.
func (v *Vector[V]) At(i int) V { return v.cells[i] }

// Set overwrites cell i.
func (v *Vector[V]) Set(i int, value V) { v.cells[i] = value }

// Values iterates over all cells in index order.
func (v *Vector[V]) Values() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, c := range v.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Check validates structural invariants. A vector has none beyond being
// non-nil.
func (v *Vector[V]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvalidStorage)
	}
	return nil
}
