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

// Package match filters file names by glob pattern.
package match

import (
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Filter returns the subsequence of names whose *entire* name matches
// the glob pattern. Substring hits do not count. An empty result is a valid
// result, not an error; a malformed pattern is.
func Filter(ctx context.Context, names []string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Errorf("pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	matched := make([]string, 0, len(names))
	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, errors.Errorf("matching %q against %q: %w", name, pattern, err)
		}
		if ok {
			matched = append(matched, name)
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", pattern).
		Int("in", len(names)).
		Int("out", len(matched)).
		Msg("filtered files")

	return matched, nil
}
