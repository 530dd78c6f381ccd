package cells

import "math"

// Element defines how a cell of type V is accumulated into. W is the type of
// the weight argument of Add.
//
// Implementations are zero-sized and passed as a type argument to Storage,
// thus the choice between arithmetic cells and accumulator cells is made once
// per cell type, at compile time.
type Element[V, W any] interface {
	// Inc is the unweighted increment.
	Inc(v *V)
	// Add is the weighted addition.
	Add(v *V, w W)
	// Merge adds the content of another cell to v.
	Merge(v *V, other V)
	// Scale multiplies v by x in place.
	Scale(v *V, x float64)
}

// Arithmetic accumulates into plain numbers: Inc is ++ and Add is +=.
type Arithmetic[V Number] struct{}

func (Arithmetic[V]) Inc(v *V)        { *v++ }
func (Arithmetic[V]) Add(v *V, w V)   { *v += w }
func (Arithmetic[V]) Merge(v *V, o V) { *v += o }

// Scale multiplies in float64 and converts back, truncating integral cells
// toward zero. For integral cells the product has to be finite, and for
// unsigned cells it must not be negative; otherwise Scale panics with
// ErrIllegalArguments.
func (Arithmetic[V]) Scale(v *V, x float64) {
	f := float64(*v) * x
	if integral[V]() {
		assert(!math.IsNaN(f) && !math.IsInf(f, 0), ErrIllegalArguments, "scaling %v by %g", *v, x)
		assert(f >= 0 || signed[V](), ErrIllegalArguments, "negative result %g for unsigned cell", f)
	}
	*v = V(f)
}

// integral reports whether V is an integer type.
func integral[V Number]() bool {
	half := 0.5
	return V(half) == 0
}

// signed reports whether V is able to hold negative numbers.
func signed[V Number]() bool {
	var z V
	z--
	return z < 0
}

// Accumulator is implemented (with pointer receivers) by cell types which keep
// their own accumulation state, e.g. a sum together with a sum of squares.
type Accumulator[V, W any] interface {
	*V
	Inc()
	Add(w W)
	Merge(other V)
	Scale(x float64)
}

// Invoking delegates accumulation to the cell value itself.
type Invoking[V, W any, P Accumulator[V, W]] struct{}

func (Invoking[V, W, P]) Inc(v *V)              { P(v).Inc() }
func (Invoking[V, W, P]) Add(v *V, w W)         { P(v).Add(w) }
func (Invoking[V, W, P]) Merge(v *V, o V)       { P(v).Merge(o) }
func (Invoking[V, W, P]) Scale(v *V, x float64) { P(v).Scale(x) }

var (
	_ Element[int64, int64]     = Arithmetic[int64]{}
	_ Element[float32, float32] = Arithmetic[float32]{}
)
