package accumulators

import (
	"fmt"
	"math"
)

// Sum is a compensated sum of float64 values (Neumaier's variant of Kahan
// summation). Adding many small values to a large sum does not lose them.
type Sum struct {
	large float64
	small float64
}

// Inc adds 1.
func (s *Sum) Inc() {
	s.Add(1)
}

// Add adds x.
func (s *Sum) Add(x float64) {
	t := s.large + x
	if math.Abs(s.large) >= math.Abs(x) {
		s.small += (s.large - t) + x
	} else {
		s.small += (x - t) + s.large
	}
	s.large = t
}

// Merge adds the value of another compensated sum.
func (s *Sum) Merge(other Sum) {
	s.Add(other.large)
	s.Add(other.small)
}

// Scale multiplies the sum by x.
func (s *Sum) Scale(x float64) {
	s.large *= x
	s.small *= x
}

// Value returns the compensated total.
func (s Sum) Value() float64 { return s.large + s.small }

func (s Sum) String() string {
	return fmt.Sprintf("sum(%g)", s.Value())
}
