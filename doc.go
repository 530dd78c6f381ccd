/*
Package cells offers uniform storage for the bins of histogram-like data
structures.

Cells

A histogram counts into cells, one cell per bin. Depending on the number of
bins and on how many of them will actually be hit, different containers serve
best as cell storage:

  - a growable slice for the common dense case,
  - a fixed-capacity buffer, e.g. a view onto a Go array, when the maximum
    number of bins is known in advance and allocations should be avoided,
  - a map from (unsigned) bin index to cell value for sparse histograms with
    many bins of which only few are non-empty.

Package cells wraps each of these containers into a backing (Vector, Array,
Map) and presents one accumulation interface on top of it: Storage. The
category of a backing is a property of its type, so the decision which code
path to take is made by the compiler, not at run-time.

Cell values are either plain numbers, which are incremented and added to by
arithmetic, or accumulator objects which update their internal state
themselves (see package accumulators). This choice is a type parameter of
Storage as well.

	st := cells.NewDense[int64]()
	st.Reset(10)
	st.Inc(3)
	st.Add(4, 7)

Storages of different categories may be converted into each other and
combined with each other, as long as they have the same number of cells:

	sparse := cells.NewSparse[uint, int64]()
	err := sparse.Assign(st)   // sparse now stores 2 entries for 10 cells

Storage is not safe for concurrent use. Clients have to provide external
synchronization if a storage is to be mutated from more than one goroutine.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package cells

import (
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, err error, format string, args ...any) {
	if !condition {
		panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
	}
}
