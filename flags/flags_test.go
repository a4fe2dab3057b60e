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

package flags_test

import (
	"slices"
	"testing"

	"dirpx.dev/enumx/flags"
)

type day uint8

const (
	sunday   day = 1
	monday   day = 2
	saturday day = 64
)

func TestHasAll(t *testing.T) {
	if !flags.HasAll(day(3), sunday) {
		t.Fatal("HasAll(3, 1) = false, want true")
	}
	if !flags.HasAll(day(3), day(3)) {
		t.Fatal("HasAll(3, 3) = false, want true")
	}
	if flags.HasAll(sunday, day(3)) {
		t.Fatal("HasAll(1, 3) = true, want false")
	}
	if !flags.HasAll(day(0), day(0)) {
		t.Fatal("the empty set is a subset of everything")
	}
}

func TestHasAny(t *testing.T) {
	if !flags.HasAny(day(3), monday) {
		t.Fatal("HasAny(3, 2) = false, want true")
	}
	if flags.HasAny(day(3), saturday) {
		t.Fatal("HasAny(3, 64) = true, want false")
	}
	if flags.HasAny(day(3), day(0)) {
		t.Fatal("nothing intersects the empty set")
	}
}

func TestCombineFoldsLeftToRight(t *testing.T) {
	if got := flags.Combine(sunday, monday, saturday); got != 67 {
		t.Fatalf("Combine(1,2,64) = %d, want 67", got)
	}
	if got := flags.Combine[day](); got != 0 {
		t.Fatalf("Combine() = %d, want 0", got)
	}
}

func TestIdempotence(t *testing.T) {
	for _, v := range []day{0, 1, 3, 64, 67, 255} {
		if flags.Combine(v, v) != v {
			t.Errorf("Combine(%d, %d) != %d", v, v, v)
		}
		if flags.Remove(v, v) != 0 {
			t.Errorf("Remove(%d, %d) != 0", v, v)
		}
		if flags.Common(v, v) != v {
			t.Errorf("Common(%d, %d) != %d", v, v, v)
		}
	}
}

func TestRemove(t *testing.T) {
	if got := flags.Remove(day(67), sunday); got != 66 {
		t.Fatalf("Remove(67, 1) = %d, want 66", got)
	}
	// Removing an absent flag is a no-op.
	if got := flags.Remove(day(66), sunday); got != 66 {
		t.Fatalf("Remove(66, 1) = %d, want 66", got)
	}
}

func TestToggle(t *testing.T) {
	all := day(1 | 2 | 64)
	if got := flags.Toggle(sunday, all); got != 66 {
		t.Fatalf("Toggle(1, all) = %d, want 66", got)
	}
	// Bits outside the mask are preserved, never introduced.
	unnamed := day(128)
	if got := flags.Toggle(sunday|unnamed, all); got != 66|128 {
		t.Fatalf("Toggle(129, all) = %d, want %d", got, 66|128)
	}
	// Toggle against all is its own inverse.
	for _, v := range []day{0, 1, 3, 67, 200} {
		if flags.Toggle(flags.Toggle(v, all), all) != v {
			t.Errorf("double toggle of %d did not return to start", v)
		}
	}
}

func TestIsValidCombination(t *testing.T) {
	all := day(1 | 2 | 64)
	if !flags.IsValidCombination(day(0), all) {
		t.Fatal("0 is always valid")
	}
	if !flags.IsValidCombination(all, all) {
		t.Fatal("the full set is always valid")
	}
	if !flags.IsValidCombination(day(3), all) {
		t.Fatal("3 is a clean combination")
	}
	if flags.IsValidCombination(day(4), all) {
		t.Fatal("4 is not covered by the set")
	}
}

func TestDecomposeAscendingAndTotal(t *testing.T) {
	var got []day
	for f := range flags.Decompose(day(65), 8) {
		got = append(got, f)
	}
	if !slices.Equal(got, []day{1, 64}) {
		t.Fatalf("Decompose(65) = %v, want [1 64]", got)
	}

	// Unnamed bits are surfaced; order is strictly ascending; OR of the
	// parts reproduces the value.
	for _, v := range []day{0, 7, 128, 255} {
		var parts []day
		var acc day
		for f := range flags.Decompose(v, 8) {
			parts = append(parts, f)
			acc |= f
		}
		if acc != v {
			t.Errorf("parts of %d OR to %d", v, acc)
		}
		if !slices.IsSorted(parts) {
			t.Errorf("parts of %d not ascending: %v", v, parts)
		}
	}
}

func TestDecomposeSignedMinimum(t *testing.T) {
	// The sign bit of a narrow signed type is one flag, not 64.
	var got []int8
	for f := range flags.Decompose(int8(-128), 8) {
		got = append(got, f)
	}
	if len(got) != 1 || got[0] != -128 {
		t.Fatalf("Decompose(int8(-128)) = %v, want [-128]", got)
	}
}

func TestDecomposeIsRestartable(t *testing.T) {
	seq := flags.Decompose(day(67), 8)
	for i := 0; i < 2; i++ {
		n := 0
		for range seq {
			n++
		}
		if n != 3 {
			t.Fatalf("pass %d yielded %d flags, want 3", i, n)
		}
	}
}

func TestDecomposeEarlyStop(t *testing.T) {
	var first day
	for f := range flags.Decompose(day(67), 8) {
		first = f
		break
	}
	if first != 1 {
		t.Fatalf("first flag = %d, want 1", first)
	}
}
