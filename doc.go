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

// Package enumx is a runtime metadata cache and algebra engine for closed
// sets of named integer constants.
//
// enumx turns "some integer-backed constant type" into a queryable
// enumerated type: members carry names and optional descriptive metadata,
// values convert to and from text under pluggable format orders, and types
// declared as flag sets get full bit-set algebra and decomposition. All of
// it is generic over the underlying integer width, so the engine is written
// once and monomorphized per type with no per-call reflection and no boxed
// value representation.
//
// # Design
//
// The core of enumx is a per-type descriptor built lazily on first use:
//
//   - Declaration: the one-time (name, value, metadata) tuples for a type,
//     registered during program initialization via Declare. The engine
//     never re-reads a declaration once its descriptor is cached.
//
//   - Descriptor: the immutable metadata cache for one type. Members are
//     stable-sorted by value (declaration order breaks ties), duplicates
//     are allowed, and the canonical "primary" member of each value is
//     resolved once at build time. Value lookups are O(log n) binary
//     search; name lookups are O(1) through an exact index, with a
//     case-insensitive index derived lazily on first folded lookup.
//
//   - Flag algebra: pure set-style operations (combine, remove, common,
//     toggle, membership tests) over raw values, plus decomposition of any
//     value into its single-bit components, including bits no member
//     declares, so decomposition is total.
//
//   - Format pipeline: rendering and parsing driven by an ordered list of
//     format specifiers with fall-through; custom formatters register
//     process-wide and their identifiers work anywhere a built-in
//     specifier does.
//
// Descriptor construction is a pure function of static declaration data.
// Concurrent first access may build redundantly; exactly one result is
// published (compute, then publish-if-absent) and every caller sees the
// same descriptor afterwards, with no locking on any read path.
//
// The package-global state is a read-mostly snapshot holding the active
// configuration and the custom format registry. Readers load an atomic
// pointer; writers assemble a new snapshot under a short build mutex and
// swap it in. Lookups and conversions are therefore lock-free:
//
//	name := enumx.Name(Monday)
//	v, err := enumx.Parse[Weekday]("Monday")
//
// # Declaring a type
//
//	type Weekday uint8
//
//	const (
//		None     Weekday = 0
//		Sunday   Weekday = 1 << (iota - 1)
//		Monday
//		Tuesday
//		Wednesday
//		Thursday
//		Friday
//		Saturday
//	)
//
//	func init() {
//		enumx.MustDeclare(enumx.Declaration[Weekday]{
//			Flags: true,
//			Members: []enumx.Member[Weekday]{
//				{Name: "None", Value: None},
//				{Name: "Sunday", Value: Sunday},
//				{Name: "Monday", Value: Monday},
//				{Name: "Tuesday", Value: Tuesday},
//				{Name: "Wednesday", Value: Wednesday},
//				{Name: "Thursday", Value: Thursday},
//				{Name: "Friday", Value: Friday},
//				{Name: "Saturday", Value: Saturday},
//			},
//		})
//	}
//
// After which:
//
//	enumx.String(Monday | Saturday)        // "Monday, Saturday"
//	enumx.ParseFlags[Weekday]("Monday, Saturday")
//	enumx.HasAllFlags(day, Monday)
//	for f := range enumx.Flags(day) { ... }
//
// # Errors
//
// Absent results (a value with no member, a name that resolves to nothing)
// are reported as explicit (zero, false) returns, never as errors: absence
// is a normal outcome. Text that fails to parse yields *apis.ParseError;
// numeric literals that parse but overflow the underlying width yield
// *apis.OverflowError so callers can tell "not a member" from "out of
// range". Malformed arguments (empty format lists, unrecognized
// specifiers) fail immediately with sentinel errors. Nothing is retried
// and nothing is swallowed.
//
// # Scope
//
// enumx is intentionally small. It is not a reflection framework and not a
// serialization library: it formats and parses individual values, caches
// per-type metadata, and implements flag algebra. Everything else belongs
// to higher layers.
package enumx
