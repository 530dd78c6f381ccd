package cells

import (
	"fmt"
	"iter"
)

// Array is an array-like backing: a buffer of fixed capacity, of which the
// first n cells are in use.
//
// The buffer is never re-allocated. This makes Array suitable for wrapping a
// view onto a Go array:
//
//	var bins [64]float64
//	a := cells.ArrayOver(bins[:0])   // 0 cells, capacity 64
type Array[V comparable] struct {
	// n is the logical cell count; valid cells are store[:n].
	n int
	// store has len(store) == capacity and is never resized.
	store []V
}

// NewArray creates an empty array backing with a given capacity.
func NewArray[V comparable](capacity int) *Array[V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[V]{store: make([]V, capacity)}
}

// ArrayOver creates an array backing on top of buf. The logical size is
// len(buf), the capacity is cap(buf). The backing takes ownership of buf's
// underlying array.
func ArrayOver[V comparable](buf []V) *Array[V] {
	return &Array[V]{n: len(buf), store: buf[:cap(buf)]}
}

// Category is ArrayLike.
func (a *Array[V]) Category() Category { return ArrayLike }

// Len returns the number of cells in use.
func (a *Array[V]) Len() int { return a.n }

// Cap returns the fixed capacity.
func (a *Array[V]) Cap() int { return len(a.store) }

// Reset sets the first n cells to the zero value and makes them the cells in
// use. If n exceeds the capacity, ErrCapacityExceeded is returned and the
// backing is left unchanged.
func (a *Array[V]) Reset(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrIllegalArguments, n)
	}
	if n > len(a.store) {
		T().Errorf("cells: array reset to %d cells, capacity is %d", n, len(a.store))
		return fmt.Errorf("%w: size %d exceeds maximum capacity %d", ErrCapacityExceeded, n, len(a.store))
	}
	clear(a.store[:n])
	a.n = n
	return nil
}

// At returns cell i.
func (a *Array[V]) At(i int) V { return a.store[i] }

// Set overwrites cell i.
func (a *Array[V]) Set(i int, value V) { a.store[i] = value }

// Values iterates over the cells in use, in index order.
func (a *Array[V]) Values() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, c := range a.store[:a.n] {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Check validates that the logical size stays within capacity.
func (a *Array[V]) Check() error {
	if a == nil {
		return fmt.Errorf("%w: nil array", ErrInvalidStorage)
	}
	if a.n < 0 {
		return fmt.Errorf("%w: negative array size %d", ErrInvalidStorage, a.n)
	}
	if a.n > len(a.store) {
		return fmt.Errorf("%w: array size exceeds capacity (%d > %d)", ErrInvalidStorage, a.n, len(a.store))
	}
	return nil
}
