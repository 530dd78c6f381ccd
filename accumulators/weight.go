package accumulators

import "golang.org/x/exp/constraints"

// Real is the constraint for numeric weights.
type Real interface {
	constraints.Integer | constraints.Float
}

// Weight marks a value as a weight for a fill, as opposed to a plain
// increment:
//
//	st.Add(i, accumulators.WithWeight(2.5))
type Weight[T Real] struct {
	Value T
}

// WithWeight wraps x as a weight.
func WithWeight[T Real](x T) Weight[T] {
	return Weight[T]{Value: x}
}
