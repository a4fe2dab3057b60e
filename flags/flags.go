/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package flags implements set-style bit operations over generic integer
// values. Every function is a pure function of its arguments; nothing here
// reads or mutates descriptor state.
package flags

import (
	"iter"

	"golang.org/x/exp/constraints"

	"dirpx.dev/enumx/utils/numeric"
)

// HasAll reports whether every bit set in want is also set in v.
func HasAll[E constraints.Integer](v, want E) bool {
	return v&want == want
}

// HasAny reports whether v and want share at least one set bit.
func HasAny[E constraints.Integer](v, want E) bool {
	return v&want != 0
}

// Combine returns the union of vs, folding left to right. Combining no
// values yields 0, the empty set.
func Combine[E constraints.Integer](vs ...E) E {
	var out E
	for _, v := range vs {
		out |= v
	}
	return out
}

// Common returns the bits set in both a and b.
func Common[E constraints.Integer](a, b E) E {
	return a & b
}

// Remove returns v with every bit of unwanted cleared.
func Remove[E constraints.Integer](v, unwanted E) E {
	return v &^ unwanted
}

// Toggle flips the bits of mask in v. Toggling against a full flag set
// complements v within that set: bits outside the mask are preserved, never
// introduced.
func Toggle[E constraints.Integer](v, mask E) E {
	return v ^ mask
}

// IsValidCombination reports whether every set bit of v is also set in all.
// Zero is always a valid combination.
func IsValidCombination[E constraints.Integer](v, all E) bool {
	return v&^all == 0
}

// Decompose returns a lazy, restartable sequence of the single-bit
// components of v in increasing bit significance. Only bits actually set in
// v are yielded, and bits with no declared member are still surfaced as raw
// single-bit values, so decomposition is total over all integer values.
func Decompose[E constraints.Integer](v E, width int) iter.Seq[E] {
	return func(yield func(E) bool) {
		for u := numeric.ToUint64(v, width); u != 0; {
			low := numeric.LowBit(u)
			u &^= low
			if !yield(numeric.FromUint64[E](low)) {
				return
			}
		}
	}
}
