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

package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultMaxFiles caps how many directory entries a single run considers.
const DefaultMaxFiles = 50

// 🎯 Mode says how the pattern and replacement strings are obtained.
type Mode int

const (
	// ModeInteractive prompts for pattern, from and to on stdin.
	ModeInteractive Mode = iota
	// ModeNonInteractive takes all three from the command line.
	ModeNonInteractive
)

func (m Mode) String() string {
	if m == ModeNonInteractive {
		return "non-interactive"
	}
	return "interactive"
}

// 📦 Config is the immutable per-run configuration, built once at startup
// from positional args, flags and the optional defaults file.
type Config struct {
	// TargetDir is the directory whose entries are renamed.
	TargetDir string

	// Pattern, From and To are the glob filter and the substitution pair.
	// They participate in mode selection only when the matching Has field
	// is set; an empty supplied value is still "supplied".
	Pattern string
	From    string
	To      string

	HasPattern bool
	HasFrom    bool
	HasTo      bool

	// Yes skips the final confirmation prompt.
	Yes bool

	// MaxFiles bounds enumeration. DefaultMaxFiles unless the defaults
	// file overrides it.
	MaxFiles int

	// NoColor disables colored plan output.
	NoColor bool
}

// Mode selects interactive vs non-interactive. The rule is all-or-nothing:
// a partially supplied triple (say, pattern only) falls back to prompting
// for the whole triple, not just the missing pieces.
func (c *Config) Mode() Mode {
	if c.HasPattern && c.HasFrom && c.HasTo {
		return ModeNonInteractive
	}
	return ModeInteractive
}

// Validate checks the target directory before any work begins.
func (c *Config) Validate(ctx context.Context) error {
	zerolog.Ctx(ctx).Debug().
		Str("target", c.TargetDir).
		Str("mode", c.Mode().String()).
		Msg("validating config")

	info, err := os.Stat(c.TargetDir)
	if err != nil {
		return errors.Errorf("'%s' is not a valid directory: %w", c.TargetDir, err)
	}
	if !info.IsDir() {
		return errors.Errorf("'%s' is not a valid directory", c.TargetDir)
	}
	if c.MaxFiles <= 0 {
		return errors.Errorf("max_files must be positive, got %d", c.MaxFiles)
	}
	return nil
}
