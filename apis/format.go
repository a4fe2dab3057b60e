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

package apis

import "fmt"

// Format selects how a single specifier in a format list renders or parses
// an enum value.
//
// # Overview
//
// A format list is an ordered sequence of Format specifiers. Rendering tries
// each specifier in order and the first one to produce non-empty output wins;
// parsing tries each specifier in order and the first one to resolve the text
// wins. A specifier that cannot handle the input falls through to the next.
//
// # Values
//
// The built-in specifiers are:
//
//   - FormatName: the primary member's declared name; falls through
//     when the value maps to no declared member.
//   - FormatDecimal: the raw value in base 10; always renders.
//   - FormatHex: the raw value in base 16, uppercase, zero-padded to
//     the underlying width; always renders. Parsing accepts an optional
//     "0x"/"0X" prefix.
//   - FormatUnderlying: the raw underlying integer in base 10; always
//     renders.
//
// Identifiers at or above CustomFormatStart refer to process-registered
// custom formatters (see the format package's Registry). Custom identifiers
// are minted monotonically, are never reused within a process run, and are
// valid anywhere a built-in specifier is accepted.
type Format int

const (
	// FormatName renders or parses the member's declared name.
	FormatName Format = iota

	// FormatDecimal renders or parses the value in base 10.
	FormatDecimal

	// FormatHex renders or parses the value in base 16.
	FormatHex

	// FormatUnderlying renders or parses the raw underlying integer in
	// base 10.
	FormatUnderlying
)

// CustomFormatStart is the first identifier available to custom formatters.
// The range below it is reserved for built-in specifiers.
const CustomFormatStart Format = 100

// IsCustom reports whether f refers to a registered custom formatter rather
// than a built-in specifier.
func (f Format) IsCustom() bool {
	return f >= CustomFormatStart
}

// String returns a human-readable representation of the Format value.
// For unknown values in the reserved range it returns a diagnostic
// "Unknown(<n>)" form; it never panics.
func (f Format) String() string {
	switch f {
	case FormatName:
		return "Name"
	case FormatDecimal:
		return "Decimal"
	case FormatHex:
		return "Hex"
	case FormatUnderlying:
		return "Underlying"
	}
	if f.IsCustom() {
		return fmt.Sprintf("Custom(%d)", int(f)-int(CustomFormatStart))
	}
	return fmt.Sprintf("Unknown(%d)", int(f))
}

// FormatFunc is a user-supplied member formatter. It receives the resolved
// member in type-erased form and returns its textual representation, or an
// empty string to fall through to the next specifier in the list.
//
// FormatFunc implementations must be safe for concurrent use, must not block
// or perform I/O, and are expected to be registered during program
// initialization.
type FormatFunc func(m MemberDesc) string

// MemberDesc is the type-erased view of a declared member handed to custom
// formatters. It is identical across underlying integer widths so a single
// registered formatter serves every enumerated type.
type MemberDesc struct {
	// Name is the member's declared name.
	Name string

	// Metadata is the ordered list of opaque descriptive items attached at
	// declaration. The engine stores and returns metadata without
	// interpreting it.
	Metadata []any
}
