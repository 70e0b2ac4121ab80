// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package config loads rendering defaults from a YAML or TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/golangee/mathml"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// Config holds rendering defaults. Empty fields keep the library defaults.
type Config struct {
	// Display is "block", "inline" or empty for no <math> root.
	Display string `yaml:"display" toml:"display"`
	// Target is the MathML version, e.g. "v3" or "v4".
	Target string `yaml:"target" toml:"target"`
	// Indent is repeated per nesting level; empty means compact output.
	Indent string `yaml:"indent" toml:"indent"`
	// Format is "xml" or "json".
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Format: FormatXML}
}

// Load reads the file at path. The format is chosen by extension: .yaml and .yml
// are read as YAML, everything else as TOML. Values missing in the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("YAML parse error in %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("TOML parse error in %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the display, target and format values.
func (c Config) Validate() error {
	if c.Format != FormatXML && c.Format != FormatJSON {
		return fmt.Errorf("unsupported format %q, expected %q or %q", c.Format, FormatXML, FormatJSON)
	}

	// The options are validated by the serializer itself.
	_, err := mathml.ToTree("x", c.Options()...)

	return err
}

// Options returns the serialization options for this configuration.
func (c Config) Options() []mathml.Option {
	return []mathml.Option{
		mathml.WithDisplay(c.Display),
		mathml.WithTarget(c.Target),
		mathml.WithIndent(c.Indent),
	}
}
