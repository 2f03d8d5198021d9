// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package plan derives the rename plan from matched names and a
// substitution rule.
package plan

import (
	"strings"
)

// 🔄 Rule is a literal (non-regex) substitution: every non-overlapping
// occurrence of From in a name becomes To, in a single pass. From may be
// empty; strings.ReplaceAll then interleaves To between every character,
// which is deterministic and kept as-is (interactive mode rejects an empty
// From before a Rule is ever built, the non-interactive path passes it
// through unchanged).
type Rule struct {
	From string
	To   string
}

// Apply transforms one name under the rule.
func (r Rule) Apply(name string) string {
	return strings.ReplaceAll(name, r.From, r.To)
}

// 📦 Entry is one planned rename. Old != New always holds for entries
// produced by Build.
type Entry struct {
	Old string
	New string
}

// Build computes the rename plan for the matched names, preserving their
// relative order and dropping every pair the rule leaves unchanged. Pure
// computation, no filesystem access.
func Build(names []string, rule Rule) []Entry {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		renamed := rule.Apply(name)
		if renamed == name {
			continue
		}
		entries = append(entries, Entry{Old: name, New: renamed})
	}
	return entries
}
