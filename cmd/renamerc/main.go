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

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/ui"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	var failed bool

	rootCmd := &cobra.Command{
		Use:   "renamerc [path] [pattern] [from] [to]",
		Short: "Batch-rename files in a directory by glob filter and literal substitution",
		Long: `renamerc lists the files in a directory, filters them by a glob pattern,
and renames every match by replacing a literal substring.

Supply pattern, from and to together to run non-interactively; leave any of
them off and renamerc prompts for all three.`,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags are parsed by now; safe to pick the log level.
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(args)
			if err != nil {
				return err
			}

			op := operation.New(operation.Options{
				Config: cfg,
				UI:     ui.New(cmd.OutOrStdout(), cmd.InOrStdin(), cfg.NoColor),
			})

			result, err := op.Execute(cmd.Context())
			if err != nil {
				return err
			}
			if result != nil && result.Failed() {
				failed = true
			}
			return nil
		},
	}

	addRootFlags(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
	if failed {
		// Completion was already reported; the exit status still tells
		// scripts that some entries were not renamed.
		os.Exit(1)
	}
}
