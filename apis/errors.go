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

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyFormats is returned when an empty format list is supplied
	// where at least one specifier is required.
	ErrEmptyFormats = errors.New("enumx(apis): empty format list")
	// ErrUnknownFormat is returned when a format list contains a specifier
	// that is neither a built-in kind nor a registered custom identifier.
	ErrUnknownFormat = errors.New("enumx(apis): unrecognized format specifier")
	// ErrNilFormatter is returned when a nil formatter function is
	// registered.
	ErrNilFormatter = errors.New("enumx(apis): nil formatter provided")
	// ErrEmptyName is returned when a member is declared with an empty name.
	ErrEmptyName = errors.New("enumx(apis): empty member name provided")
	// ErrDuplicateName is returned when two members of one declaration
	// share a name.
	ErrDuplicateName = errors.New("enumx(apis): duplicate member name")
	// ErrConflictingPrimary is returned when more than one member of the
	// same value is marked primary.
	ErrConflictingPrimary = errors.New("enumx(apis): conflicting primary members for one value")
	// ErrAlreadyDeclared indicates an attempt to declare a type that
	// already has a declaration.
	ErrAlreadyDeclared = errors.New("enumx(apis): type already declared")
)

// ParseError reports that a text failed to resolve to a value under a given
// format list. It carries the offending text and the specifier order that
// was attempted.
type ParseError struct {
	// Text is the input that did not resolve.
	Text string
	// Formats is the specifier order that was attempted.
	Formats []Format
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	names := make([]string, len(e.Formats))
	for i, f := range e.Formats {
		names[i] = f.String()
	}
	return fmt.Sprintf("enumx: cannot parse %q using formats [%s]", e.Text, strings.Join(names, ", "))
}

// OverflowError reports that a numeric literal parsed but does not fit the
// type's underlying integer width. It is distinct from ParseError so callers
// can tell "not a member" from "out of range".
type OverflowError struct {
	// Text is the literal that overflowed.
	Text string
	// Bits is the underlying width it did not fit.
	Bits int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("enumx: value %q out of range for %d-bit underlying type", e.Text, e.Bits)
}
