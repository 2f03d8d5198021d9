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

// Package scan enumerates the files a run will consider.
package scan

import (
	"context"
	"os"
	"sort"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔍 ListFiles returns the base names of regular files in dir, sorted
// lexicographically. Subdirectories, symlinks to directories and special
// files are excluded. Enumeration stops once max qualifying entries have
// been collected, so entries past the cap are never considered; the sort
// applies to the truncated set.
func ListFiles(ctx context.Context, dir string, max int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	files := make([]string, 0, min(len(entries), max))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Errorf("reading metadata for %s: %w", entry.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, entry.Name())
		if len(files) >= max {
			break
		}
	}
	sort.Strings(files)

	zerolog.Ctx(ctx).Debug().
		Str("dir", dir).
		Int("count", len(files)).
		Int("max", max).
		Msg("enumerated files")

	return files, nil
}
