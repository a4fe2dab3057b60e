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

package descriptor

import (
	"fmt"
	"reflect"
	"sync"

	"golang.org/x/exp/constraints"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/utils/numeric"
)

// declarations maps reflect.Type to its stored Declaration[E].
// Written by Declare, read once per type by For.
var declarations sync.Map

// built maps reflect.Type to its published *Descriptor[E]. Descriptors are
// keyed by type identity and reused for the lifetime of the process; the
// set of declared types is bounded by the program's own code, so there is
// no eviction.
var built sync.Map

// typeOf returns the reflect.Type identity key for E.
func typeOf[E constraints.Integer]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// Declare stores the declaration data for E after validating it: member
// names must be non-empty and unique, and at most one member per distinct
// value may carry the explicit primary marker. Declarations are expected
// during program initialization, before first use; declaring a type twice,
// or after an operation already published its descriptor, fails with
// ErrAlreadyDeclared.
func Declare[E constraints.Integer](decl Declaration[E]) error {
	names := make(map[string]struct{}, len(decl.Members))
	primaries := make(map[E]string, len(decl.Members))
	for _, m := range decl.Members {
		if m.Name == "" {
			return apis.ErrEmptyName
		}
		if _, dup := names[m.Name]; dup {
			return fmt.Errorf("%w: %q", apis.ErrDuplicateName, m.Name)
		}
		names[m.Name] = struct{}{}
		if m.Primary {
			if prev, dup := primaries[m.Value]; dup {
				return fmt.Errorf("%w: %q and %q (%s)",
					apis.ErrConflictingPrimary, prev, m.Name,
					numeric.FormatDecimal(m.Value, numeric.Signed[E]()))
			}
			primaries[m.Value] = m.Name
		}
	}

	key := typeOf[E]()
	if _, used := built.Load(key); used {
		return fmt.Errorf("%w: %s", apis.ErrAlreadyDeclared, key)
	}
	if _, loaded := declarations.LoadOrStore(key, decl); loaded {
		return fmt.Errorf("%w: %s", apis.ErrAlreadyDeclared, key)
	}
	return nil
}

// MustDeclare is like Declare but panics on invalid input. It is intended
// for package-level declarations where an invalid declaration is a
// programmer error.
func MustDeclare[E constraints.Integer](decl Declaration[E]) {
	if err := Declare(decl); err != nil {
		panic(err)
	}
}

// For returns the Descriptor for E, building and publishing it on first
// use. The build is a pure function of static declaration data, so
// concurrent first callers may each build; LoadOrStore publishes exactly
// one result and the redundant copies are discarded. A type that was never
// declared yields an empty non-flag descriptor, which represents a type
// with no legal values while keeping numeric formatting and flag
// decomposition total.
func For[E constraints.Integer]() *Descriptor[E] {
	key := typeOf[E]()
	if v, ok := built.Load(key); ok {
		return v.(*Descriptor[E])
	}

	var decl Declaration[E]
	if v, ok := declarations.Load(key); ok {
		decl = v.(Declaration[E])
	}
	d := build(decl)

	actual, _ := built.LoadOrStore(key, d)
	return actual.(*Descriptor[E])
}

// Reset clears all declarations and published descriptors. It exists for
// tests; production code declares once at initialization and never resets.
func Reset() {
	declarations.Clear()
	built.Clear()
}
