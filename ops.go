package cells

import (
	"fmt"
	"reflect"
)

// Assign replaces the content of s by the content of src, which may be a
// storage of a different category. s is reset to src.Len() cells and every
// cell of src is copied. For sparse targets, only non-zero cells create
// entries.
//
// If s cannot hold src.Len() cells, the error from Reset is returned and s is
// unchanged. Assigning a storage to itself leaves it unchanged.
func (s *Storage[V, W, B, E]) Assign(src Source[V]) error {
	if isNil(src) {
		return fmt.Errorf("%w: nil source", ErrIllegalArguments)
	}
	if self, ok := src.(*Storage[V, W, B, E]); ok && self == s {
		return nil
	}
	n := src.Len()
	if err := s.back.Reset(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s.back.Set(i, src.At(i))
	}
	T().P("cells", s.back.Category()).Debugf("assigned %d cells", n)
	return nil
}

// Convert creates a new storage on top of backing b, holding a copy of src.
// The element adaptor of the new storage is the same as the one of src.
//
//	sparse, err := cells.Convert(dense, cells.NewMap[uint, int64]())
func Convert[V comparable, W any, B, C Backing[V], E Element[V, W]](src *Storage[V, W, B, E], b C) (*Storage[V, W, C, E], error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrIllegalArguments)
	}
	dest := &Storage[V, W, C, E]{back: b}
	if err := dest.Assign(src); err != nil {
		return nil, err
	}
	return dest, nil
}

// Merge adds every cell of src to the corresponding cell of s, in ascending
// index order (the += of storages). Both storages must have the same number
// of cells; otherwise ErrSizeMismatch is returned and s is left untouched.
func (s *Storage[V, W, B, E]) Merge(src Source[V]) error {
	if isNil(src) {
		return fmt.Errorf("%w: nil source", ErrIllegalArguments)
	}
	n := s.back.Len()
	if n != src.Len() {
		return fmt.Errorf("%w: %d != %d", ErrSizeMismatch, n, src.Len())
	}
	for i := 0; i < n; i++ {
		v := s.back.At(i)
		s.elem.Merge(&v, src.At(i))
		s.back.Set(i, v)
	}
	return nil
}

// Scale multiplies every cell by x in place (the *= of storages).
func (s *Storage[V, W, B, E]) Scale(x float64) {
	for i, n := 0, s.back.Len(); i < n; i++ {
		v := s.back.At(i)
		s.elem.Scale(&v, x)
		s.back.Set(i, v)
	}
}

// Div divides every cell by x in place, by scaling with 1/x. Storages of
// integral cells must not be divided by zero.
func (s *Storage[V, W, B, E]) Div(x float64) {
	s.Scale(1.0 / x)
}

// Equal reports whether src has the same number of cells as s, and every cell
// of src equals the corresponding cell of s. The categories of the backings do
// not matter.
func (s *Storage[V, W, B, E]) Equal(src Source[V]) bool {
	if isNil(src) {
		return false
	}
	n := s.back.Len()
	if n != src.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if s.back.At(i) != src.At(i) {
			return false
		}
	}
	return true
}

// isNil reports whether src is nil, including a nil pointer (or map, slice)
// wrapped in the interface.
func isNil[V any](src Source[V]) bool {
	if src == nil {
		return true
	}
	switch v := reflect.ValueOf(src); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
