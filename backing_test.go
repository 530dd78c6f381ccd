package cells

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCategoryOfBackingTypes(t *testing.T) {
	if c := CategoryOf[int, *Vector[int]](); c != VectorLike {
		t.Errorf("expected Vector to be vector-like, is %v", c)
	}
	if c := CategoryOf[int, *Array[int]](); c != ArrayLike {
		t.Errorf("expected Array to be array-like, is %v", c)
	}
	if c := CategoryOf[int, *Map[uint16, int]](); c != MapLike {
		t.Errorf("expected Map to be map-like, is %v", c)
	}
	if NoCategory.String() != "<none>" || MapLike.String() != "map" {
		t.Errorf("unexpected category names %q, %q", NoCategory, MapLike)
	}
}

func TestResetYieldsZeroCells(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	backings := map[string]Backing[int]{
		"vector": VectorOf([]int{1, 2, 3}),
		"array":  ArrayOver([]int{4, 5, 6, 7}),
		"map":    mustMap(t, map[uint]int{0: 1, 2: 3}, 3),
	}
	for name, b := range backings {
		if err := b.Reset(4); err != nil {
			t.Fatalf("%s: reset failed: %v", name, err)
		}
		if b.Len() != 4 {
			t.Errorf("%s: expected 4 cells, have %d", name, b.Len())
		}
		for i := 0; i < b.Len(); i++ {
			if b.At(i) != 0 {
				t.Errorf("%s: expected cell %d to be zero, is %d", name, i, b.At(i))
			}
		}
		if err := b.Check(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if err := b.Reset(-1); !errors.Is(err, ErrIllegalArguments) {
			t.Errorf("%s: expected negative size to be rejected, have %v", name, err)
		}
	}
}

func TestVectorResetReusesBuffer(t *testing.T) {
	v := VectorOf(make([]float64, 3, 10))
	v.Set(1, 2.5)
	if err := v.Reset(8); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 8 || cap(v.cells) != 10 {
		t.Errorf("expected len 8 within cap 10, have len=%d cap=%d", v.Len(), cap(v.cells))
	}
	if err := v.Reset(20); err != nil {
		t.Fatal(err)
	}
	if v.Len() != 20 {
		t.Errorf("vector should grow without bounds, len is %d", v.Len())
	}
}

func TestArrayCapacityExceededLeavesStateUntouched(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var bins [4]int
	a := ArrayOver(bins[:0])
	if a.Len() != 0 || a.Cap() != 4 {
		t.Fatalf("expected 0 cells with capacity 4, have %d/%d", a.Len(), a.Cap())
	}
	if err := a.Reset(3); err != nil {
		t.Fatal(err)
	}
	a.Set(0, 7)
	a.Set(2, 9)
	err := a.Reset(5)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected capacity error, have %v", err)
	}
	t.Logf("error = %v", err)
	if a.Len() != 3 || a.At(0) != 7 || a.At(1) != 0 || a.At(2) != 9 {
		t.Errorf("failed reset modified array: len=%d cells=%v", a.Len(), bins)
	}
	if bins[0] != 7 {
		t.Errorf("array backing should write through to the Go array")
	}
}

func TestArrayDetectsSizeDrift(t *testing.T) {
	a := NewArray[int](2)
	a.n = 3 // corrupt logical size on purpose
	err := a.Check()
	if !errors.Is(err, ErrInvalidStorage) {
		t.Fatalf("expected invariant error for size drift, have %v", err)
	}
}

func TestMapErasesZeroValues(t *testing.T) {
	m := NewMap[uint, float64]()
	if err := m.Reset(10); err != nil {
		t.Fatal(err)
	}
	m.Set(3, 1.5)
	m.Set(7, 2)
	if m.Stored() != 2 {
		t.Fatalf("expected 2 entries, have %d", m.Stored())
	}
	m.Set(3, 0)
	if m.Stored() != 1 || m.Len() != 10 || m.At(3) != 0 {
		t.Errorf("expected entry 3 to be erased: stored=%d len=%d at(3)=%g", m.Stored(), m.Len(), m.At(3))
	}
	m.Set(3, 0) // erasing an absent entry is a no-op
	m.Set(5, 0)
	if m.Stored() != 1 {
		t.Errorf("writing zero must not create entries, have %d", m.Stored())
	}
	for i, v := range m.Entries() {
		if i != 7 || v != 2 {
			t.Errorf("unexpected entry %d=%g", i, v)
		}
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

func TestMapEntriesAreOrdered(t *testing.T) {
	m := mustMap(t, map[uint8]int{9: 1, 2: 2, 5: 3, 0: 0}, 10)
	var keys []int
	for i := range m.Entries() {
		keys = append(keys, i)
	}
	if len(keys) != 3 || keys[0] != 2 || keys[1] != 5 || keys[2] != 9 {
		t.Errorf("expected keys [2 5 9], have %v", keys)
	}
}

func TestMapOfRejectsKeysOutOfRange(t *testing.T) {
	_, err := MapOf(map[uint]int{4: 1}, 4)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected out of bounds error, have %v", err)
	}
	_, err = MapOf[uint, int](nil, -1)
	if !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected illegal arguments error, have %v", err)
	}
}

func TestMapDetectsStoredZero(t *testing.T) {
	m := NewMap[uint, int]()
	_ = m.Reset(3)
	m.entries[1] = 0 // bypass Set on purpose
	if err := m.Check(); !errors.Is(err, ErrInvalidStorage) {
		t.Errorf("expected invariant error for stored zero, have %v", err)
	}
}

func mustMap[K Key, V comparable](t *testing.T, m map[K]V, n int) *Map[K, V] {
	t.Helper()
	sparse, err := MapOf(m, n)
	if err != nil {
		t.Fatalf("cannot create map backing: %v", err)
	}
	return sparse
}

func TestDenseValuesIterateLogicalCells(t *testing.T) {
	a := ArrayOver(make([]int, 2, 8))
	a.Set(1, 3)
	var seen []int
	for i, v := range a.Values() {
		seen = append(seen, i, v)
	}
	if len(seen) != 4 || seen[2] != 1 || seen[3] != 3 {
		t.Errorf("expected array to yield cells 0 and 1 only, have %v", seen)
	}
	v := VectorOf([]int{5, 6, 7})
	sum := 0
	for _, c := range v.Values() {
		sum += c
		if c == 6 {
			break
		}
	}
	if sum != 11 {
		t.Errorf("expected iteration to stop after second cell, sum is %d", sum)
	}
}

func TestMapRejectsSizeBeyondKeyRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := NewMap[uint8, int]()
	if err := m.Reset(256); err != nil {
		t.Fatalf("256 cells should be addressable by uint8 keys: %v", err)
	}
	m.Set(255, 1)
	err := m.Reset(300)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected capacity error for 300 cells with uint8 keys, have %v", err)
	}
	t.Logf("error = %v", err)
	if m.Len() != 256 || m.At(255) != 1 {
		t.Errorf("failed reset modified map: len=%d at(255)=%d", m.Len(), m.At(255))
	}
	if _, err = MapOf(map[uint8]int{1: 1}, 257); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected MapOf to reject 257 cells with uint8 keys, have %v", err)
	}
	m.n = 300 // corrupt logical size on purpose
	if err = m.Check(); !errors.Is(err, ErrInvalidStorage) {
		t.Errorf("expected invariant error for size beyond key range, have %v", err)
	}
}
