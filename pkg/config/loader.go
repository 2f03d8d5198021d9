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
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 📝 Defaults holds the optional per-directory defaults file. It never
// carries pattern/from/to: mode selection stays a pure function of the
// command line.
type Defaults struct {
	MaxFiles    *int  `yaml:"max_files" hcl:"max_files,optional"`
	NoColor     *bool `yaml:"no_color" hcl:"no_color,optional"`
	SkipConfirm *bool `yaml:"skip_confirm" hcl:"skip_confirm,optional"`
}

// LoadDefaults reads a defaults file. The format is determined by the file
// extension:
// - .yaml or .yml for YAML
// - .hcl for HCL
// A missing file is not an error; callers get an empty Defaults back.
func LoadDefaults(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Defaults{}, nil
		}
		return nil, errors.Errorf("reading defaults file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".hcl":
		return parseHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported defaults file extension %q", ext)
	}
}

func parseYAML(data []byte) (*Defaults, error) {
	var d Defaults
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &d, nil
}

func parseHCL(data []byte, filename string) (*Defaults, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var d Defaults
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &d)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}
	return &d, nil
}

// Apply folds file-level defaults into a Config. Values already set on the
// command line win; the file only fills what the user left alone.
func (d *Defaults) Apply(cfg *Config) {
	if d.MaxFiles != nil && cfg.MaxFiles == 0 {
		cfg.MaxFiles = *d.MaxFiles
	}
	if cfg.MaxFiles == 0 {
		cfg.MaxFiles = DefaultMaxFiles
	}
	if d.NoColor != nil && !cfg.NoColor {
		cfg.NoColor = *d.NoColor
	}
	if d.SkipConfirm != nil && !cfg.Yes {
		cfg.Yes = *d.SkipConfirm
	}
}
