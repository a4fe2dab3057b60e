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

import "fmt"

// Selection chooses which declared members a member enumeration yields.
type Selection int

const (
	// SelectAll yields every declared member, duplicates included, in
	// ascending value order with declaration order breaking ties.
	SelectAll Selection = iota

	// SelectDistinct yields one member per distinct value: the explicit
	// primary when one was declared, otherwise the first member of that
	// value in declaration order.
	SelectDistinct

	// SelectFlags yields only members whose value has exactly one set bit,
	// in ascending value order. These are the candidate flag members.
	SelectFlags
)

// String returns a human-readable representation of the Selection value.
// Unknown values yield a diagnostic "Unknown(<n>)" form; it never panics.
func (s Selection) String() string {
	switch s {
	case SelectAll:
		return "All"
	case SelectDistinct:
		return "Distinct"
	case SelectFlags:
		return "Flags"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}
