package accumulators

import "fmt"

// WeightedSum holds the sum of weights and the sum of squared weights of the
// entries of a bin. For unweighted entries both sums are equal to the count.
type WeightedSum struct {
	sum   float64
	sumSq float64
}

// NewWeightedSum creates a weighted sum with a given value and variance.
func NewWeightedSum(value, variance float64) WeightedSum {
	return WeightedSum{sum: value, sumSq: variance}
}

// Inc adds an entry of weight 1.
func (ws *WeightedSum) Inc() {
	ws.sum++
	ws.sumSq++
}

// Add adds an entry of weight w.
func (ws *WeightedSum) Add(w Weight[float64]) {
	ws.sum += w.Value
	ws.sumSq += w.Value * w.Value
}

// Merge adds the entries of another weighted sum.
func (ws *WeightedSum) Merge(other WeightedSum) {
	ws.sum += other.sum
	ws.sumSq += other.sumSq
}

// Scale multiplies all weights by x. The variance scales with x².
func (ws *WeightedSum) Scale(x float64) {
	ws.sum *= x
	ws.sumSq *= x * x
}

// Value is the sum of weights.
func (ws WeightedSum) Value() float64 { return ws.sum }

// Variance is the sum of squared weights, an estimate for the variance of
// Value.
func (ws WeightedSum) Variance() float64 { return ws.sumSq }

func (ws WeightedSum) String() string {
	return fmt.Sprintf("weighted_sum(%g, %g)", ws.sum, ws.sumSq)
}
