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

package format

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/enumx/apis"
)

// Registry is an append-only list of custom member formatters. Each
// registration mints the next identifier past the built-in reserved range;
// identifiers are never reused or invalidated within a process run.
//
// Register serializes writers behind a mutex and publishes a fresh snapshot
// slice through an atomic pointer, so Resolve is lock-free and concurrent
// registrations neither lose entries nor reorder existing identifiers.
// Registration frequency is expected to be low (once per custom format at
// startup), so copy-on-write is cheap.
type Registry struct {
	mu  sync.Mutex
	fns atomic.Pointer[[]apis.FormatFunc]
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	r := &Registry{}
	empty := make([]apis.FormatFunc, 0)
	r.fns.Store(&empty)
	return r
}

// Register appends fn and returns its identifier. A nil fn is rejected with
// ErrNilFormatter.
func (r *Registry) Register(fn apis.FormatFunc) (apis.Format, error) {
	if fn == nil {
		return 0, apis.ErrNilFormatter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := *r.fns.Load()
	next := make([]apis.FormatFunc, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = fn
	r.fns.Store(&next)

	return apis.CustomFormatStart + apis.Format(len(cur)), nil
}

// Resolve returns the formatter registered under f, if any. O(1) index
// into the current snapshot.
func (r *Registry) Resolve(f apis.Format) (apis.FormatFunc, bool) {
	if !f.IsCustom() {
		return nil, false
	}
	fns := *r.fns.Load()
	i := int(f - apis.CustomFormatStart)
	if i >= len(fns) {
		return nil, false
	}
	return fns[i], true
}

// Len returns the number of registered formatters.
func (r *Registry) Len() int {
	return len(*r.fns.Load())
}
