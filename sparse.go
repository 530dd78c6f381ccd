package cells

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Map is a map-like backing for sparse storage. Only cells holding a value
// different from V's zero value are stored; reading any other cell yields the
// zero value.
//
// The logical size is tracked independently of the number of stored entries.
// Writing the zero value to a cell erases its entry, thus
// Stored() <= Len() holds at all times.
type Map[K Key, V comparable] struct {
	n       int
	entries map[K]V
}

// NewMap creates an empty sparse backing.
func NewMap[K Key, V comparable]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// MapOf creates a sparse backing of n cells which takes ownership of m.
// Entries holding a zero value are dropped. Keys must address one of the n
// cells, otherwise ErrIndexOutOfBounds is returned. If K cannot address n
// cells, ErrCapacityExceeded is returned.
func MapOf[K Key, V comparable](m map[K]V, n int) (*Map[K, V], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrIllegalArguments, n)
	}
	if !addressable[K](n) {
		return nil, fmt.Errorf("%w: %d cells exceed key range of %T", ErrCapacityExceeded, n, K(0))
	}
	if m == nil {
		m = make(map[K]V)
	}
	var zero V
	for k, v := range m {
		if uint64(k) >= uint64(n) {
			return nil, fmt.Errorf("%w: key %d for %d cells", ErrIndexOutOfBounds, k, n)
		}
		if v == zero {
			delete(m, k)
		}
	}
	return &Map[K, V]{n: n, entries: m}, nil
}

// Category is MapLike.
func (m *Map[K, V]) Category() Category { return MapLike }

// Len returns the logical number of cells.
func (m *Map[K, V]) Len() int { return m.n }

// Stored returns the number of entries actually held, i.e. the number of cells
// which differ from the zero value.
func (m *Map[K, V]) Stored() int { return len(m.entries) }

// Reset drops all entries and sets the logical size to n. Entries will be
// created lazily by Set. If n exceeds the number of cells K is able to
// address, ErrCapacityExceeded is returned and the backing is left unchanged.
func (m *Map[K, V]) Reset(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrIllegalArguments, n)
	}
	if !addressable[K](n) {
		T().Errorf("cells: map reset to %d cells, key type is %T", n, K(0))
		return fmt.Errorf("%w: %d cells exceed key range of %T", ErrCapacityExceeded, n, K(0))
	}
	if m.entries == nil {
		m.entries = make(map[K]V)
	} else {
		clear(m.entries)
	}
	m.n = n
	return nil
}

// At returns the value stored for cell i, or the zero value if there is none.
func (m *Map[K, V]) At(i int) V {
	return m.entries[K(i)] // a missing key reads as zero
}

// Set stores value for cell i. Storing the zero value erases the entry for i,
// if present.
func (m *Map[K, V]) Set(i int, value V) {
	var zero V
	if value == zero {
		delete(m.entries, K(i))
		return
	}
	if m.entries == nil {
		m.entries = make(map[K]V)
	}
	m.entries[K(i)] = value
}

// Entries iterates over the stored entries in ascending index order.
// Cells holding the zero value are not visited.
func (m *Map[K, V]) Entries() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for _, k := range slices.Sorted(maps.Keys(m.entries)) {
			if !yield(int(k), m.entries[k]) {
				return
			}
		}
	}
}

// Check validates the sparse invariants: every stored key addresses a cell,
// every cell is addressable by a key, and no entry holds the zero value.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrInvalidStorage)
	}
	if m.n < 0 || !addressable[K](m.n) {
		return fmt.Errorf("%w: size %d outside key range of %T", ErrInvalidStorage, m.n, K(0))
	}
	if len(m.entries) > m.n {
		return fmt.Errorf("%w: more entries than cells (%d > %d)", ErrInvalidStorage, len(m.entries), m.n)
	}
	var zero V
	for k, v := range m.entries {
		if uint64(k) >= uint64(m.n) {
			return fmt.Errorf("%w: key %d outside of %d cells", ErrInvalidStorage, k, m.n)
		}
		if v == zero {
			return fmt.Errorf("%w: zero value stored for key %d", ErrInvalidStorage, k)
		}
	}
	return nil
}

// addressable reports whether keys of type K are able to address n cells,
// i.e. n <= max(K)+1.
func addressable[K Key](n int) bool {
	if n <= 0 {
		return true
	}
	return uint64(n-1) <= uint64(^K(0))
}
