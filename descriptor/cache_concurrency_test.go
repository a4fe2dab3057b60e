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

package descriptor_test

import (
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/descriptor"
)

// TestConcurrentFirstBuildPublishesOneDescriptor verifies that racing first
// accesses may build redundantly but all callers observe the same published
// descriptor.
func TestConcurrentFirstBuildPublishesOneDescriptor(t *testing.T) {
	type Racy uint32
	if err := descriptor.Declare(descriptor.Declaration[Racy]{
		Flags: true,
		Members: []descriptor.Member[Racy]{
			{Name: "A", Value: 1},
			{Name: "B", Value: 2},
			{Name: "C", Value: 4},
		},
	}); err != nil {
		t.Fatalf("declare: %v", err)
	}

	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]*descriptor.Descriptor[Racy], workers)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(workers)
	for w := 0; w < workers; w++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			got[i] = descriptor.For[Racy]()
		}(w)
	}
	start.Done()
	done.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d observed a different descriptor", i)
		}
	}
	if got[0].AllFlags() != 7 {
		t.Fatalf("AllFlags = %d, want 7", got[0].AllFlags())
	}
}

// TestConcurrentFoldedLookups hammers the lazily built case-insensitive
// index from many goroutines; racing builders must agree.
func TestConcurrentFoldedLookups(t *testing.T) {
	type Folded uint8
	if err := descriptor.Declare(descriptor.Declaration[Folded]{
		Members: []descriptor.Member[Folded]{
			{Name: "Alpha", Value: 1},
			{Name: "Beta", Value: 2},
			{Name: "Gamma", Value: 3},
		},
	}); err != nil {
		t.Fatalf("declare: %v", err)
	}
	d := descriptor.For[Folded]()

	names := []string{"ALPHA", "beta", "GaMmA"}
	want := []Folded{1, 2, 3}

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := i % len(names)
				m, ok := d.LookupName(names[j], true)
				if !ok || m.Value != want[j] {
					t.Errorf("LookupName(%q) = %v, %v", names[j], m, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

// TestConcurrentLookupsAndIterations verifies read paths are contention-free
// and consistent once a descriptor exists.
func TestConcurrentLookupsAndIterations(t *testing.T) {
	d := descriptor.For[Weekday]()

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				if m, ok := d.LookupValue(Saturday); !ok || m.Name != "Saturday" {
					t.Errorf("LookupValue(Saturday) = %v, %v", m, ok)
					return
				}
				n := 0
				for range d.Members(apis.SelectAll) {
					n++
				}
				if n != d.Len() {
					t.Errorf("iteration yielded %d members, want %d", n, d.Len())
					return
				}
			}
		}()
	}
	wg.Wait()
}
