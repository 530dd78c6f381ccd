/*
Package accumulators provides cell types which keep their own accumulation
state.

A plain number cell only knows how to be incremented. An accumulator cell may
track more: WeightedSum tracks the sum of weights together with the sum of
squared weights, giving a variance estimate for every histogram bin; Sum is a
compensated sum which does not lose small increments next to a large total.

All accumulators implement

	Inc()
	Add(w W)
	Merge(other V)
	Scale(x float64)

on their pointer type and are usable as cells of a cells.Storage through
cells.AdaptAccumulator. Their zero values are empty accumulators, and they are
comparable, as required for sparse storage.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package accumulators
