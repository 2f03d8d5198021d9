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

// Package operation wires the pipeline: enumerate, filter, transform,
// preview, confirm, apply. Strictly linear; every stage consumes the
// complete output of the one before it.
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/match"
	"github.com/walteh/renamerc/pkg/plan"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/scan"
	"github.com/walteh/renamerc/pkg/ui"
	"gitlab.com/tozd/go/errors"
)

// 📦 Options carries the dependencies for a rename operation.
type Options struct {
	Config *config.Config
	UI     *ui.UI
}

// 🎯 RenameOperation is one full run of the pipeline.
type RenameOperation struct {
	cfg *config.Config
	ui  *ui.UI
}

// 🏭 New creates a rename operation.
func New(opts Options) *RenameOperation {
	return &RenameOperation{
		cfg: opts.Config,
		ui:  opts.UI,
	}
}

// 🏃 Execute runs the pipeline. A nil Result with a nil error means the run
// stopped cleanly before execution: empty directory, no matches, nothing to
// rename, or the user declined. Fatal errors (bad directory, bad pattern,
// enumeration I/O) come back as errors for the caller to report once.
func (op *RenameOperation) Execute(ctx context.Context) (*rename.Result, error) {
	log := zerolog.Ctx(ctx)

	if err := op.cfg.Validate(ctx); err != nil {
		return nil, err
	}

	files, err := scan.ListFiles(ctx, op.cfg.TargetDir, op.cfg.MaxFiles)
	if err != nil {
		return nil, errors.Errorf("listing files: %w", err)
	}
	if len(files) == 0 {
		op.ui.Printf("Directory '%s' is empty or contains no files.", op.cfg.TargetDir)
		return nil, nil
	}

	pattern, rule, cancelled, err := op.resolveInputs(files)
	if err != nil {
		return nil, err
	}
	if cancelled {
		return nil, nil
	}

	matched, err := match.Filter(ctx, files, pattern)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		op.ui.Printf("\nNo files match pattern '%s'", pattern)
		return nil, nil
	}

	entries := plan.Build(matched, rule)
	if len(entries) == 0 {
		op.ui.Printf("Nothing to rename.")
		return nil, nil
	}
	op.ui.RenderPlan(entries)

	proceed := op.cfg.Yes
	if !proceed {
		proceed, err = op.ui.Confirm()
		if err != nil {
			return nil, errors.Errorf("reading confirmation: %w", err)
		}
	}
	if !proceed {
		op.ui.Cancelled()
		return nil, nil
	}

	log.Debug().Int("entries", len(entries)).Msg("executing plan")
	op.ui.Printf("\nRenaming...")
	result := rename.Apply(ctx, op.cfg.TargetDir, entries, op.ui)
	op.ui.Completed()
	return result, nil
}

// resolveInputs obtains the pattern and substitution pair per the run mode.
// The triple is all-or-nothing: unless pattern, from AND to were supplied
// up front, the whole triple is prompted for, including any pieces that
// were on the command line.
func (op *RenameOperation) resolveInputs(files []string) (string, plan.Rule, bool, error) {
	if op.cfg.Mode() == config.ModeNonInteractive {
		op.ui.Banner(op.cfg.Pattern, op.cfg.From, op.cfg.To)
		return op.cfg.Pattern, plan.Rule{From: op.cfg.From, To: op.cfg.To}, false, nil
	}

	op.ui.ListFiles(op.cfg.TargetDir, files)
	op.ui.Divider()

	pattern, err := op.ui.Prompt("Filter pattern (glob): ")
	if err != nil {
		return "", plan.Rule{}, false, errors.Errorf("reading pattern: %w", err)
	}
	if pattern == "" {
		op.ui.Printf("No filter pattern entered, operation cancelled.")
		return "", plan.Rule{}, true, nil
	}

	op.ui.Divider()
	op.ui.Printf("Replace <A> with <B>:\n")

	from, err := op.ui.Prompt("A: ")
	if err != nil {
		return "", plan.Rule{}, false, errors.Errorf("reading search string: %w", err)
	}
	if from == "" {
		op.ui.Printf("The string to replace <A> must not be empty.")
		return "", plan.Rule{}, true, nil
	}

	// Empty B is allowed: it deletes occurrences of A.
	to, err := op.ui.Prompt("B: ")
	if err != nil {
		return "", plan.Rule{}, false, errors.Errorf("reading replacement string: %w", err)
	}

	return pattern, plan.Rule{From: from, To: to}, false, nil
}
