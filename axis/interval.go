/*
Package axis provides a read-only view of the bin intervals of a histogram
axis.

Axes map values to bin indices and are implemented elsewhere. To inspect the
bins of an axis, this package only needs the inverse mapping: Value(x) returns
the coordinate at the (possibly fractional) bin position x. Position i is the
lower edge of bin i, position i+1 its upper edge.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package axis

// Axis is the part of a histogram axis needed to compute bin edges.
type Axis interface {
	Value(position float64) float64
}

// Interval is anything with a lower and an upper edge.
type Interval interface {
	Lower() float64
	Upper() float64
}

// IntervalView is a view of bin Index of an axis.
type IntervalView[A Axis] struct {
	axis  A
	Index int
}

// Bin creates a view of bin idx of axis a.
func Bin[A Axis](a A, idx int) IntervalView[A] {
	return IntervalView[A]{axis: a, Index: idx}
}

// Lower returns the lower edge of the bin.
func (v IntervalView[A]) Lower() float64 { return v.axis.Value(float64(v.Index)) }

// Upper returns the upper edge of the bin.
func (v IntervalView[A]) Upper() float64 { return v.axis.Value(float64(v.Index + 1)) }

// Center returns the center of the bin.
func (v IntervalView[A]) Center() float64 { return v.axis.Value(float64(v.Index) + 0.5) }

// Width returns Upper() - Lower().
func (v IntervalView[A]) Width() float64 { return v.Upper() - v.Lower() }

// Equal reports whether bin and v have the same edges.
func (v IntervalView[A]) Equal(bin Interval) bool {
	return v.Lower() == bin.Lower() && v.Upper() == bin.Upper()
}
