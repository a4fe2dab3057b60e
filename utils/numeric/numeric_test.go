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

package numeric_test

import (
	"errors"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/utils/numeric"
)

type u8 uint8
type i8 int8
type i32 int32
type u64 uint64

func TestBitsAndSigned(t *testing.T) {
	if got := numeric.Bits[u8](); got != 8 {
		t.Fatalf("Bits[u8] = %d, want 8", got)
	}
	if got := numeric.Bits[i32](); got != 32 {
		t.Fatalf("Bits[i32] = %d, want 32", got)
	}
	if got := numeric.Bits[u64](); got != 64 {
		t.Fatalf("Bits[u64] = %d, want 64", got)
	}
	if !numeric.Signed[i8]() {
		t.Fatal("Signed[i8] = false, want true")
	}
	if numeric.Signed[u8]() {
		t.Fatal("Signed[u8] = true, want false")
	}
}

func TestToUint64MasksSignExtension(t *testing.T) {
	// int8(-1) sign-extends to 64 set bits; the masked view keeps 8.
	u := numeric.ToUint64(i8(-1), 8)
	if u != 0xFF {
		t.Fatalf("ToUint64(i8(-1), 8) = %#x, want 0xFF", u)
	}
	if got := numeric.OnesCount(i8(-1), 8); got != 8 {
		t.Fatalf("OnesCount(i8(-1), 8) = %d, want 8", got)
	}
}

func TestIsFlagBit(t *testing.T) {
	cases := []struct {
		v    u8
		want bool
	}{
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{65, false},
		{128, true},
	}
	for _, tc := range cases {
		if got := numeric.IsFlagBit(tc.v, 8); got != tc.want {
			t.Errorf("IsFlagBit(%d) = %v, want %v", tc.v, got, tc.want)
		}
	}
	// A negative signed value has its sign bit plus sign extension; within
	// the masked width the minimum value is a single bit.
	if !numeric.IsFlagBit(i8(-128), 8) {
		t.Error("IsFlagBit(i8(-128)) = false, want true")
	}
}

func TestFormatDecimal(t *testing.T) {
	if got := numeric.FormatDecimal(i8(-5), true); got != "-5" {
		t.Fatalf("FormatDecimal(i8(-5)) = %q, want \"-5\"", got)
	}
	if got := numeric.FormatDecimal(u8(200), false); got != "200" {
		t.Fatalf("FormatDecimal(u8(200)) = %q, want \"200\"", got)
	}
}

func TestFormatHexPadsToWidth(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{numeric.FormatHex(u8(0xF), 8), "0F"},
		{numeric.FormatHex(i8(-1), 8), "FF"},
		{numeric.FormatHex(i32(255), 32), "000000FF"},
		{numeric.FormatHex(u64(1), 64), "0000000000000001"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("FormatHex = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestParseDecimal(t *testing.T) {
	v, err := numeric.ParseDecimal[u8]("200", 8, false)
	if err != nil || v != 200 {
		t.Fatalf("ParseDecimal(200) = %d, %v", v, err)
	}
	n, err := numeric.ParseDecimal[i8]("-5", 8, true)
	if err != nil || n != -5 {
		t.Fatalf("ParseDecimal(-5) = %d, %v", n, err)
	}
}

func TestParseDecimalOverflowIsDistinct(t *testing.T) {
	_, err := numeric.ParseDecimal[u8]("300", 8, false)
	var oe *apis.OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("ParseDecimal(300) err = %v, want *apis.OverflowError", err)
	}
	if oe.Text != "300" || oe.Bits != 8 {
		t.Fatalf("OverflowError = %+v", oe)
	}

	_, err = numeric.ParseDecimal[u8]("banana", 8, false)
	if !errors.Is(err, numeric.ErrMalformed) {
		t.Fatalf("ParseDecimal(banana) err = %v, want ErrMalformed", err)
	}
	if errors.As(err, &oe) {
		t.Fatal("malformed input must not be an overflow")
	}
}

func TestParseHex(t *testing.T) {
	v, err := numeric.ParseHex[u8]("0x40", 8)
	if err != nil || v != 64 {
		t.Fatalf("ParseHex(0x40) = %d, %v", v, err)
	}
	// Bare digits, either prefix case.
	if v, _ = numeric.ParseHex[u8]("40", 8); v != 64 {
		t.Fatalf("ParseHex(40) = %d, want 64", v)
	}
	if v, _ = numeric.ParseHex[u8]("0X40", 8); v != 64 {
		t.Fatalf("ParseHex(0X40) = %d, want 64", v)
	}
	// The literal is the unsigned bit pattern of the width.
	n, err := numeric.ParseHex[i8]("FF", 8)
	if err != nil || n != -1 {
		t.Fatalf("ParseHex[i8](FF) = %d, %v, want -1", n, err)
	}
	var oe *apis.OverflowError
	if _, err := numeric.ParseHex[u8]("100", 8); !errors.As(err, &oe) {
		t.Fatalf("ParseHex(100) err = %v, want overflow", err)
	}
}

func TestLowBit(t *testing.T) {
	cases := []struct{ in, want uint64 }{
		{0, 0},
		{1, 1},
		{0b1010, 0b10},
		{0b1000000, 0b1000000},
	}
	for _, tc := range cases {
		if got := numeric.LowBit(tc.in); got != tc.want {
			t.Errorf("LowBit(%#b) = %#b, want %#b", tc.in, got, tc.want)
		}
	}
}
