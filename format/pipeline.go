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

// Package format renders enum values to text and parses text back, driven
// by an ordered list of format specifiers tried with fall-through: the
// first specifier to produce output (or resolve the input) wins. The
// pipeline is stateless; all state lives in the Descriptor and the
// Registry it is handed.
package format

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"dirpx.dev/enumx/apis"
	"dirpx.dev/enumx/descriptor"
	"dirpx.dev/enumx/flags"
	"dirpx.dev/enumx/utils/numeric"
)

// Render formats v under the given specifier order. Specifiers that cannot
// represent v fall through; the first non-empty output wins. When every
// specifier falls through the result is ("", nil): absence of a textual
// representation is a normal outcome, not an error. An empty format list or
// an unresolvable specifier is an argument error.
func Render[E constraints.Integer](d *descriptor.Descriptor[E], v E, reg *Registry, formats []apis.Format) (string, error) {
	if len(formats) == 0 {
		return "", apis.ErrEmptyFormats
	}
	for _, f := range formats {
		switch f {
		case apis.FormatName:
			if m, ok := d.LookupValue(v); ok {
				return m.Name, nil
			}
		case apis.FormatDecimal, apis.FormatUnderlying:
			return numeric.FormatDecimal(v, d.Signed()), nil
		case apis.FormatHex:
			return numeric.FormatHex(v, d.Width()), nil
		default:
			fn, ok := reg.Resolve(f)
			if !ok {
				return "", fmt.Errorf("%w: %s", apis.ErrUnknownFormat, f)
			}
			if m, ok := d.LookupValue(v); ok {
				if out := fn(m.Desc()); out != "" {
					return out, nil
				}
			}
		}
	}
	return "", nil
}

// RenderDefault formats v the way String does when no specifier order is
// supplied: the primary member name when v is declared; for flag types, the
// delimiter-joined decomposition of v with each component rendered as its
// name or, when unnamed, its decimal value; otherwise the decimal value.
func RenderDefault[E constraints.Integer](d *descriptor.Descriptor[E], v E, cfg apis.Config, reg *Registry) string {
	if cfg.DefaultStringFormats != nil {
		out, err := Render(d, v, reg, cfg.DefaultStringFormats)
		if err != nil {
			return ""
		}
		return out
	}
	if m, ok := d.LookupValue(v); ok {
		return m.Name
	}
	if d.IsFlagType() {
		var parts []string
		for bit := range flags.Decompose(v, d.Width()) {
			if m, ok := d.LookupValue(bit); ok {
				parts = append(parts, m.Name)
			} else {
				parts = append(parts, numeric.FormatDecimal(bit, d.Signed()))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, cfg.FlagDelimiter)
		}
	}
	return numeric.FormatDecimal(v, d.Signed())
}

// Parse resolves text to a value under the given specifier order, trying
// each specifier until one succeeds. With fold set, name resolution is
// case-insensitive; custom formats always compare exactly. For flag types,
// when no single specifier resolves the whole text and the text contains
// the configured delimiter, the flag-combination path is tried before
// failing. An empty specifier order falls back to the configured default.
func Parse[E constraints.Integer](d *descriptor.Descriptor[E], text string, fold bool, cfg apis.Config, reg *Registry, formats []apis.Format) (E, error) {
	text = strings.TrimSpace(text)
	if len(formats) == 0 {
		formats = cfg.DefaultParseFormats
	}
	if len(formats) == 0 {
		return 0, apis.ErrEmptyFormats
	}

	v, err := parseSingle(d, text, fold, reg, formats)
	if err == nil {
		return v, nil
	}
	var perr *apis.ParseError
	if errors.As(err, &perr) && d.IsFlagType() {
		if sep := strings.TrimSpace(cfg.FlagDelimiter); sep != "" && strings.Contains(text, sep) {
			return ParseFlags(d, text, cfg.FlagDelimiter, fold, cfg, reg, formats)
		}
	}
	return 0, err
}

// ParseFlags splits text on the delimiter, resolves each trimmed token
// through the specifier order, and returns the union of the results. Any
// token that resolves to nothing fails the whole parse. An empty delim
// falls back to the configured delimiter.
func ParseFlags[E constraints.Integer](d *descriptor.Descriptor[E], text, delim string, fold bool, cfg apis.Config, reg *Registry, formats []apis.Format) (E, error) {
	if delim == "" {
		delim = cfg.FlagDelimiter
	}
	if len(formats) == 0 {
		formats = cfg.DefaultParseFormats
	}
	if len(formats) == 0 {
		return 0, apis.ErrEmptyFormats
	}
	sep := strings.TrimSpace(delim)
	if sep == "" {
		sep = delim
	}

	var out E
	for _, tok := range strings.Split(text, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return 0, &apis.ParseError{Text: text, Formats: formats}
		}
		v, err := parseSingle(d, tok, fold, reg, formats)
		if err != nil {
			return 0, err
		}
		out = flags.Combine(out, v)
	}
	return out, nil
}

// parseSingle resolves one token against the specifier order. A numeric
// literal that parses but overflows the underlying width is remembered and
// reported only when no later specifier resolves the token, so callers can
// tell "not a member" from "out of range".
func parseSingle[E constraints.Integer](d *descriptor.Descriptor[E], text string, fold bool, reg *Registry, formats []apis.Format) (E, error) {
	var overflow *apis.OverflowError
	note := func(err error) {
		var oe *apis.OverflowError
		if overflow == nil && errors.As(err, &oe) {
			overflow = oe
		}
	}

	for _, f := range formats {
		switch f {
		case apis.FormatName:
			if m, ok := d.LookupName(text, fold); ok {
				return m.Value, nil
			}
		case apis.FormatDecimal, apis.FormatUnderlying:
			v, err := numeric.ParseDecimal[E](text, d.Width(), d.Signed())
			if err == nil {
				return v, nil
			}
			note(err)
		case apis.FormatHex:
			v, err := numeric.ParseHex[E](text, d.Width())
			if err == nil {
				return v, nil
			}
			note(err)
		default:
			fn, ok := reg.Resolve(f)
			if !ok {
				return 0, fmt.Errorf("%w: %s", apis.ErrUnknownFormat, f)
			}
			for m := range d.Members(apis.SelectAll) {
				if fn(m.Desc()) == text {
					return m.Value, nil
				}
			}
		}
	}
	if overflow != nil {
		return 0, overflow
	}
	return 0, &apis.ParseError{Text: text, Formats: formats}
}
