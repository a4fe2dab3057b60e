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

// Config carries read-only formatting and parsing knobs.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// FlagDelimiter separates flag members in rendered flag combinations.
	// Rendering joins with the delimiter verbatim; parsing splits on its
	// whitespace-trimmed form and trims each token, so "A, B" and "A,B"
	// both parse under the default delimiter ", ".
	FlagDelimiter string

	// DefaultParseFormats is the specifier order used by Parse when the
	// caller supplies none.
	DefaultParseFormats []Format

	// DefaultStringFormats is the specifier order used by String when the
	// caller supplies none. Nil selects the built-in default rendering:
	// member name, flag decomposition for flag types, decimal otherwise.
	DefaultStringFormats []Format
}
