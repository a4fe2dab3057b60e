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

// Package descriptor builds and caches the per-type member metadata that
// every other engine component reads. A Descriptor is built once from a
// Declaration, is immutable afterwards, and is shared across goroutines
// without locking.
package descriptor

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/utils/numeric"
)

// Member is one declared (name, value, metadata) entry of an enumerated
// type. Names are unique within a declaration; values are not, duplicates
// are allowed and meaningful.
type Member[E constraints.Integer] struct {
	// Name is the declared name, unique within the type's declaration.
	Name string
	// Value is the raw underlying integer.
	Value E
	// Metadata is the ordered list of opaque descriptive items attached at
	// declaration. The engine stores it without interpreting it.
	Metadata []any
	// Primary marks this member as the canonical one among members sharing
	// its value. At most one member per distinct value may be marked; when
	// none is, the first member of that value in declaration order is the
	// implicit primary.
	Primary bool
}

// Desc returns the type-erased view of m handed to custom formatters.
func (m Member[E]) Desc() apis.MemberDesc {
	return apis.MemberDesc{Name: m.Name, Metadata: m.Metadata}
}

// Declaration is the one-time declaration data that seeds a Descriptor.
// The engine never re-reads it once the descriptor is built.
type Declaration[E constraints.Integer] struct {
	// Members lists the declared members in declaration order.
	Members []Member[E]
	// Flags marks the type as a bit-combination set.
	Flags bool
	// Validator, when non-nil, is consulted in addition to the built-in
	// validity rules; a true result always makes a value valid.
	Validator func(E) bool
}

// Descriptor is the cached, immutable metadata structure for one enumerated
// type. All methods are safe for concurrent use.
type Descriptor[E constraints.Integer] struct {
	flagType bool
	width    int
	signed   bool

	// members is sorted ascending by value, declaration order breaking
	// ties; binary search over it is valid at all times after construction.
	members []Member[E]
	// declOf maps sorted position to declaration position.
	declOf []int
	// primary maps every sorted position to the sorted position of the
	// primary member for that value, resolved once at build time.
	primary []int
	// byName maps exact-case name to sorted position.
	byName map[string]int
	// folded is the case-insensitive name index, derived lazily on first
	// case-insensitive lookup.
	folded atomic.Pointer[map[string]int]

	// allFlags is the union of every distinct single-bit member value.
	allFlags E

	validator func(E) bool
}

// build constructs a Descriptor from declaration data. It never fails for
// well-formed input; Declare validates before storing, so build trusts its
// argument. A declaration with zero members yields a descriptor that
// represents a type with no legal values.
func build[E constraints.Integer](decl Declaration[E]) *Descriptor[E] {
	d := &Descriptor[E]{
		flagType:  decl.Flags,
		width:     numeric.Bits[E](),
		signed:    numeric.Signed[E](),
		validator: decl.Validator,
	}

	n := len(decl.Members)
	d.members = slices.Clone(decl.Members)
	d.declOf = make([]int, n)
	for i := range d.declOf {
		d.declOf[i] = i
	}

	// Stable sort keeps declaration order among equal values.
	slices.SortStableFunc(d.declOf, func(a, b int) int {
		return cmp.Compare(d.members[a].Value, d.members[b].Value)
	})
	sorted := make([]Member[E], n)
	for i, di := range d.declOf {
		sorted[i] = decl.Members[di]
	}
	d.members = sorted

	// Resolve the primary of each value run: the explicit marker wins,
	// otherwise the first member in declaration order (the run start,
	// since the sort is stable).
	d.primary = make([]int, n)
	d.byName = make(map[string]int, n)
	for start := 0; start < n; {
		end := start + 1
		for end < n && d.members[end].Value == d.members[start].Value {
			end++
		}
		prim := start
		for i := start; i < end; i++ {
			if d.members[i].Primary {
				prim = i
				break
			}
		}
		for i := start; i < end; i++ {
			d.primary[i] = prim
		}
		if numeric.IsFlagBit(d.members[start].Value, d.width) {
			d.allFlags |= d.members[start].Value
		}
		start = end
	}
	for i, m := range d.members {
		d.byName[m.Name] = i
	}
	return d
}

// LookupValue returns the member declared with value v. When duplicates
// exist, the primary is returned. O(log n) binary search.
func (d *Descriptor[E]) LookupValue(v E) (Member[E], bool) {
	i, ok := slices.BinarySearchFunc(d.members, v, func(m Member[E], v E) int {
		return cmp.Compare(m.Value, v)
	})
	if !ok {
		return Member[E]{}, false
	}
	return d.members[d.primary[i]], true
}

// LookupName returns the member declared under name. With fold set, a miss
// on the exact-case index falls back to a case-insensitive index that is
// built on first use; an exact-case hit always wins.
func (d *Descriptor[E]) LookupName(name string, fold bool) (Member[E], bool) {
	if i, ok := d.byName[name]; ok {
		return d.members[i], true
	}
	if !fold {
		return Member[E]{}, false
	}
	if i, ok := d.foldedIndex()[strings.ToLower(name)]; ok {
		return d.members[i], true
	}
	return Member[E]{}, false
}

// foldedIndex returns the case-insensitive name index, computing it on
// first use. Racing builders each compute an equivalent map and the loser's
// copy is discarded, so either may win without correctness loss.
func (d *Descriptor[E]) foldedIndex() map[string]int {
	if p := d.folded.Load(); p != nil {
		return *p
	}
	m := make(map[string]int, len(d.members))
	for i := range d.members {
		key := strings.ToLower(d.members[i].Name)
		if j, ok := m[key]; !ok || d.declOf[i] < d.declOf[j] {
			// Collisions resolve to the first-declared member.
			m[key] = i
		}
	}
	if !d.folded.CompareAndSwap(nil, &m) {
		return *d.folded.Load()
	}
	return m
}

// Members returns a lazy, restartable sequence of members in ascending
// value order, filtered by sel: every declared member (SelectAll), one
// primary per distinct value (SelectDistinct), or one primary per distinct
// single-bit value (SelectFlags).
func (d *Descriptor[E]) Members(sel apis.Selection) iter.Seq[Member[E]] {
	return func(yield func(Member[E]) bool) {
		for i := 0; i < len(d.members); i++ {
			m := d.members[i]
			switch sel {
			case apis.SelectAll:
			case apis.SelectDistinct, apis.SelectFlags:
				if i > 0 && d.members[i-1].Value == m.Value {
					// Runs are represented once, by their primary.
					continue
				}
				m = d.members[d.primary[i]]
				if sel == apis.SelectFlags && !numeric.IsFlagBit(m.Value, d.width) {
					continue
				}
			default:
				return
			}
			if !yield(m) {
				return
			}
		}
	}
}

// IsFlagType reports whether the type was declared as a bit-combination set.
func (d *Descriptor[E]) IsFlagType() bool { return d.flagType }

// AllFlags returns the union of every distinct single-bit member value, or
// 0 when no single-bit members exist.
func (d *Descriptor[E]) AllFlags() E { return d.allFlags }

// Width returns the size of the underlying integer in bits.
func (d *Descriptor[E]) Width() int { return d.width }

// Signed reports whether the underlying integer is signed.
func (d *Descriptor[E]) Signed() bool { return d.signed }

// Len returns the number of declared members, duplicates included.
func (d *Descriptor[E]) Len() int { return len(d.members) }

// IsValid reports whether v is a legal value of the type. Flag types accept
// any clean combination of declared single-bit flags as well as exactly
// declared values (named aliases); non-flag types require a declared value.
// A custom validator returning true always makes v valid.
func (d *Descriptor[E]) IsValid(v E) bool {
	if d.validator != nil && d.validator(v) {
		return true
	}
	if d.flagType {
		if v&^d.allFlags == 0 {
			return true
		}
	}
	_, ok := d.LookupValue(v)
	return ok
}
