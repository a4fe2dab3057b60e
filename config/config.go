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

package config

import (
	"slices"

	"dirpx.dev/enumx/apis"
)

// DefaultFlagDelimiter represents the default for FlagDelimiter.
// Rendering joins with it verbatim; parsing splits on its trimmed form.
const DefaultFlagDelimiter = ", "

// DefaultParseFormats returns the default specifier order for parsing:
// member name first, then the decimal value.
func DefaultParseFormats() []apis.Format {
	return []apis.Format{apis.FormatName, apis.FormatDecimal}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the delimiter is usable.
	if cfg.FlagDelimiter == "" {
		cfg.FlagDelimiter = DefaultFlagDelimiter
	}
	if len(cfg.DefaultParseFormats) == 0 {
		cfg.DefaultParseFormats = DefaultParseFormats()
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		FlagDelimiter:       DefaultFlagDelimiter,
		DefaultParseFormats: DefaultParseFormats(),
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithFlagDelimiter sets the FlagDelimiter option.
// An empty delimiter resets to the default.
func WithFlagDelimiter(delim string) Option {
	return func(c *apis.Config) {
		if delim == "" {
			c.FlagDelimiter = DefaultFlagDelimiter
			return
		}
		c.FlagDelimiter = delim
	}
}

// WithDefaultParseFormats sets the DefaultParseFormats option.
// An empty list resets to the default.
func WithDefaultParseFormats(formats ...apis.Format) Option {
	return func(c *apis.Config) {
		if len(formats) == 0 {
			c.DefaultParseFormats = DefaultParseFormats()
			return
		}
		c.DefaultParseFormats = slices.Clone(formats)
	}
}

// WithDefaultStringFormats sets the DefaultStringFormats option.
// An empty list restores the built-in default rendering.
func WithDefaultStringFormats(formats ...apis.Format) Option {
	return func(c *apis.Config) {
		if len(formats) == 0 {
			c.DefaultStringFormats = nil
			return
		}
		c.DefaultStringFormats = slices.Clone(formats)
	}
}
