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

package enumx

import (
	"iter"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/constraints"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/config"
	"dirpx.dev/enumx/descriptor"
	"dirpx.dev/enumx/flags"
	"dirpx.dev/enumx/format"
)

// init initializes the global state with default config and an empty
// custom format registry.
func init() {
	st.Store(&state{
		cfg:  config.DefaultConfig(),
		fmts: format.NewRegistry(),
	})
}

// Member is one declared (name, value, metadata) entry of an enumerated type.
type Member[E constraints.Integer] = descriptor.Member[E]

// Declaration is the one-time declaration data that seeds a type's
// descriptor.
type Declaration[E constraints.Integer] = descriptor.Declaration[E]

// Declare stores the declaration data for E. It is expected to run during
// program initialization, before any operation on E.
func Declare[E constraints.Integer](decl Declaration[E]) error {
	return descriptor.Declare(decl)
}

// MustDeclare is like Declare but panics on invalid input.
func MustDeclare[E constraints.Integer](decl Declaration[E]) {
	descriptor.MustDeclare(decl)
}

// DescriptorOf returns E's cached descriptor, building it on first use.
func DescriptorOf[E constraints.Integer]() *descriptor.Descriptor[E] {
	return descriptor.For[E]()
}

// Name returns the primary declared name for v, or "" when v maps to no
// declared member.
func Name[E constraints.Integer](v E) string {
	if m, ok := descriptor.For[E]().LookupValue(v); ok {
		return m.Name
	}
	return ""
}

// MemberOf returns the member declared with value v; with duplicates, the
// primary.
func MemberOf[E constraints.Integer](v E) (Member[E], bool) {
	return descriptor.For[E]().LookupValue(v)
}

// MemberNamed returns the member declared under name, exact case.
func MemberNamed[E constraints.Integer](name string) (Member[E], bool) {
	return descriptor.For[E]().LookupName(name, false)
}

// MemberNamedFold is MemberNamed with case-insensitive fallback; an
// exact-case match still wins.
func MemberNamedFold[E constraints.Integer](name string) (Member[E], bool) {
	return descriptor.For[E]().LookupName(name, true)
}

// Members returns a lazy, restartable sequence of E's members in ascending
// value order, filtered by sel.
func Members[E constraints.Integer](sel apis.Selection) iter.Seq[Member[E]] {
	return descriptor.For[E]().Members(sel)
}

// MetadataOf returns the metadata attached to v's primary member at
// declaration, or nil when v maps to no declared member.
func MetadataOf[E constraints.Integer](v E) []any {
	if m, ok := descriptor.For[E]().LookupValue(v); ok {
		return m.Metadata
	}
	return nil
}

// IsDefined reports whether v exactly equals some declared member's value.
func IsDefined[E constraints.Integer](v E) bool {
	_, ok := descriptor.For[E]().LookupValue(v)
	return ok
}

// IsValid reports whether v is a legal value of E: an exact declared value,
// for flag types also any clean combination of declared flags, or anything
// the declared custom validator accepts.
func IsValid[E constraints.Integer](v E) bool {
	return descriptor.For[E]().IsValid(v)
}

// String renders v under the default rendering: primary member name; for
// flag types the delimiter-joined flag decomposition; otherwise decimal.
func String[E constraints.Integer](v E) string {
	s := st.Load()
	return format.RenderDefault(descriptor.For[E](), v, s.cfg, s.fmts)
}

// Format renders v under the given specifier order. The first specifier to
// produce non-empty output wins; ("", nil) means no specifier could
// represent v, which is a normal outcome, not an error.
func Format[E constraints.Integer](v E, formats ...apis.Format) (string, error) {
	s := st.Load()
	return format.Render(descriptor.For[E](), v, s.fmts, formats)
}

// Parse resolves text to a value of E under the given specifier order,
// exact-case names. Without explicit specifiers the configured default
// order applies. For flag types, delimited text falls back to flag
// parsing.
func Parse[E constraints.Integer](text string, formats ...apis.Format) (E, error) {
	s := st.Load()
	return format.Parse(descriptor.For[E](), text, false, s.cfg, s.fmts, formats)
}

// ParseFold is Parse with case-insensitive name resolution.
func ParseFold[E constraints.Integer](text string, formats ...apis.Format) (E, error) {
	s := st.Load()
	return format.Parse(descriptor.For[E](), text, true, s.cfg, s.fmts, formats)
}

// ParseFlags resolves delimited flag text to the union of its members,
// using the configured delimiter.
func ParseFlags[E constraints.Integer](text string, formats ...apis.Format) (E, error) {
	s := st.Load()
	return format.ParseFlags(descriptor.For[E](), text, s.cfg.FlagDelimiter, false, s.cfg, s.fmts, formats)
}

// ParseFlagsFold is ParseFlags with case-insensitive name resolution.
func ParseFlagsFold[E constraints.Integer](text string, formats ...apis.Format) (E, error) {
	s := st.Load()
	return format.ParseFlags(descriptor.For[E](), text, s.cfg.FlagDelimiter, true, s.cfg, s.fmts, formats)
}

// ParseFlagsDelim is ParseFlags with a caller-supplied delimiter. An empty
// delimiter selects the configured one.
func ParseFlagsDelim[E constraints.Integer](text, delim string, formats ...apis.Format) (E, error) {
	s := st.Load()
	return format.ParseFlags(descriptor.For[E](), text, delim, false, s.cfg, s.fmts, formats)
}

// AllFlags returns the union of E's distinct single-bit member values, or
// 0 when E is not a flag type or declares no single-bit members.
func AllFlags[E constraints.Integer]() E {
	return descriptor.For[E]().AllFlags()
}

// HasAllFlags reports whether v contains every bit of the union of fs.
// With no fs it checks v against AllFlags, the full declared flag set;
// bits outside the full set play no part in that check.
func HasAllFlags[E constraints.Integer](v E, fs ...E) bool {
	if len(fs) == 0 {
		return flags.HasAll(v, AllFlags[E]())
	}
	return flags.HasAll(v, flags.Combine(fs...))
}

// HasAnyFlags reports whether v shares at least one bit with the union of
// fs, or with AllFlags when no fs are given.
func HasAnyFlags[E constraints.Integer](v E, fs ...E) bool {
	if len(fs) == 0 {
		return flags.HasAny(v, AllFlags[E]())
	}
	return flags.HasAny(v, flags.Combine(fs...))
}

// CombineFlags returns the union of vs, folding left to right.
func CombineFlags[E constraints.Integer](vs ...E) E {
	return flags.Combine(vs...)
}

// CommonFlags returns the bits set in both a and b.
func CommonFlags[E constraints.Integer](a, b E) E {
	return flags.Common(a, b)
}

// RemoveFlags returns v with every bit of the union of fs cleared.
func RemoveFlags[E constraints.Integer](v E, fs ...E) E {
	return flags.Remove(v, flags.Combine(fs...))
}

// ToggleFlags flips the bits of the union of fs in v. With no fs it
// toggles against AllFlags, i.e. complements v within the full declared
// flag set: bits outside the set are preserved, never introduced.
func ToggleFlags[E constraints.Integer](v E, fs ...E) E {
	if len(fs) == 0 {
		return flags.Toggle(v, AllFlags[E]())
	}
	return flags.Toggle(v, flags.Combine(fs...))
}

// Flags returns a lazy, restartable sequence of the single-bit components
// of v in increasing bit significance. Bits with no declared member are
// surfaced as raw single-bit values.
func Flags[E constraints.Integer](v E) iter.Seq[E] {
	return flags.Decompose(v, descriptor.For[E]().Width())
}

// FlagMembers is Flags with each component resolved to its declared member
// where one exists; unnamed bits yield a member with an empty name and the
// raw value.
func FlagMembers[E constraints.Integer](v E) iter.Seq[Member[E]] {
	d := descriptor.For[E]()
	return func(yield func(Member[E]) bool) {
		for bit := range flags.Decompose(v, d.Width()) {
			m, ok := d.LookupValue(bit)
			if !ok {
				m = Member[E]{Value: bit}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// IsValidFlagCombination reports whether every set bit of v is covered by
// AllFlags. Zero is always a valid combination.
func IsValidFlagCombination[E constraints.Integer](v E) bool {
	return flags.IsValidCombination(v, AllFlags[E]())
}

// RegisterFormat appends fn to the process-wide custom format registry and
// returns its identifier, usable anywhere a built-in specifier is accepted.
func RegisterFormat(fn apis.FormatFunc) (apis.Format, error) {
	return st.Load().fmts.Register(fn)
}

// Formats returns the process-wide custom format registry.
func Formats() *format.Registry {
	return st.Load().fmts
}

// Config returns the global enumx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global enumx configuration to cfg. The custom format
// registry carries over unchanged.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, fmts: old.fmts})
}

// SetAll explicitly replaces the global state in one shot. Nil fmts keeps
// the current registry. This is mainly used by tests to get a clean
// deterministic state between cases.
func SetAll(cfg apis.Config, fmts *format.Registry) {
	buildMu.Lock()
	defer buildMu.Unlock()

	if fmts == nil {
		fmts = st.Load().fmts
	}
	st.Store(&state{cfg: cfg, fmts: fmts})
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global enumx state.
var st atomic.Pointer[state]

// state is the global enumx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global enumx configuration.
	cfg apis.Config
	// fmts is the process-wide custom format registry.
	fmts *format.Registry
}
