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

// Package rename applies a confirmed plan against the filesystem.
package rename

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/plan"
)

// 📢 Reporter receives per-entry progress. ui.UI implements it.
type Reporter interface {
	RenameDone(oldPath, newPath string)
	RenameFailed(oldPath string, err error)
}

// ❌ Failure records one entry that could not be renamed.
type Failure struct {
	Entry plan.Entry
	Err   error
}

// 📦 Result summarizes a batch.
type Result struct {
	Renamed  int
	Failures []Failure
}

// Failed reports whether any entry in the batch failed.
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// 🏃 Apply renames dir/old to dir/new for every entry, in plan order. Each
// entry stands alone: a destination collision, a permission error or a
// vanished source is reported and recorded, and the batch moves on. Apply
// never returns early; the caller always gets the full Result.
func Apply(ctx context.Context, dir string, entries []plan.Entry, reporter Reporter) *Result {
	log := zerolog.Ctx(ctx)
	result := &Result{}

	for _, entry := range entries {
		oldPath := filepath.Join(dir, entry.Old)
		newPath := filepath.Join(dir, entry.New)

		if err := os.Rename(oldPath, newPath); err != nil {
			log.Debug().Str("old", oldPath).Str("new", newPath).Err(err).Msg("rename failed")
			reporter.RenameFailed(oldPath, err)
			result.Failures = append(result.Failures, Failure{Entry: entry, Err: err})
			continue
		}

		log.Debug().Str("old", oldPath).Str("new", newPath).Msg("renamed")
		reporter.RenameDone(oldPath, newPath)
		result.Renamed++
	}

	return result
}
