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

// Package numeric implements the integer-width operations shared by every
// enumerated type, written once generically and monomorphized per concrete
// underlying width by the compiler. Values never leave their underlying
// representation; signed values are viewed through a masked two's-complement
// uint64 for bit-level work.
package numeric

import (
	"errors"
	"math/bits"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"dirpx.dev/enumx/apis"
)

// ErrMalformed is returned when a literal is not a number in the requested
// base. Range failures are reported as *apis.OverflowError instead.
var ErrMalformed = errors.New("enumx(numeric): malformed integer literal")

// Bits returns the size of E's underlying integer in bits.
// It reflects on E's zero value; callers are expected to probe once at
// descriptor build time, never per operation.
func Bits[E constraints.Integer]() int {
	return reflect.TypeOf(E(0)).Bits()
}

// Signed reports whether E's underlying integer is signed.
func Signed[E constraints.Integer]() bool {
	// ^0 is -1 for signed types and the maximum value for unsigned ones.
	return ^E(0) < E(0)
}

// ToUint64 returns the two's-complement view of v masked to the given width.
// Masking keeps sign-extension bits of narrow signed types from leaking into
// bit counts and flag decomposition.
func ToUint64[E constraints.Integer](v E, width int) uint64 {
	u := uint64(int64(v))
	if width < 64 {
		u &= (1 << uint(width)) - 1
	}
	return u
}

// FromUint64 converts a masked two's-complement view back to E, truncating
// to E's width.
func FromUint64[E constraints.Integer](u uint64) E {
	return E(u)
}

// OnesCount returns the number of set bits in v within the given width.
func OnesCount[E constraints.Integer](v E, width int) int {
	return bits.OnesCount64(ToUint64(v, width))
}

// IsFlagBit reports whether v has exactly one set bit within the given
// width, i.e. whether v is a candidate single-bit flag member.
func IsFlagBit[E constraints.Integer](v E, width int) bool {
	return OnesCount(v, width) == 1
}

// LowBit returns the lowest set bit of u, or 0 when u is 0.
func LowBit(u uint64) uint64 {
	return u & -u
}

// FormatDecimal renders v in base 10.
func FormatDecimal[E constraints.Integer](v E, signed bool) string {
	if signed {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

// FormatHex renders v in uppercase base 16, zero-padded to the full
// underlying width (two digits per byte).
func FormatHex[E constraints.Integer](v E, width int) string {
	digits := width / 4
	s := strconv.FormatUint(ToUint64(v, width), 16)
	s = strings.ToUpper(s)
	if pad := digits - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// ParseDecimal parses a base-10 literal into E. Literals that parse but do
// not fit the width are reported as *apis.OverflowError; malformed input is
// reported as ErrMalformed.
func ParseDecimal[E constraints.Integer](s string, width int, signed bool) (E, error) {
	if signed {
		n, err := strconv.ParseInt(s, 10, width)
		if err != nil {
			return 0, mapNumErr(err, s, width)
		}
		return E(n), nil
	}
	n, err := strconv.ParseUint(s, 10, width)
	if err != nil {
		return 0, mapNumErr(err, s, width)
	}
	return E(n), nil
}

// ParseHex parses a base-16 literal into E. An optional "0x"/"0X" prefix is
// accepted. Error mapping matches ParseDecimal. The literal is read as the
// unsigned bit pattern of the underlying width, so "FF" parses to -1 for an
// 8-bit signed type.
func ParseHex[E constraints.Integer](s string, width int) (E, error) {
	t := s
	if len(t) > 2 && (t[:2] == "0x" || t[:2] == "0X") {
		t = t[2:]
	}
	n, err := strconv.ParseUint(t, 16, width)
	if err != nil {
		return 0, mapNumErr(err, s, width)
	}
	return E(n), nil
}

// mapNumErr converts strconv failures into the engine's error kinds.
func mapNumErr(err error, s string, width int) error {
	if errors.Is(err, strconv.ErrRange) {
		return &apis.OverflowError{Text: s, Bits: width}
	}
	return ErrMalformed
}
