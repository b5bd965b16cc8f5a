// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

const (
	DefaultMarker       = "Dear PVS-Studio"
	DefaultMaxScanBytes = 4096
)

// DefaultVariants are the banner lines that have been used over time.
var DefaultVariants = []string{
	"/* This is a student project. Dear PVS-Studio, please check it. */",
	"/* PVS-Studio Static Code Analyzer for C, C++: https://pvs-studio.com */",
	"// This is a personal academic project. Dear PVS-Studio, please check it.",
	"// PVS-Studio Static Code Analyzer for C, C++ and C#: http://www.viva64.com",
	"/* This is a personal project. Dear PVS-Studio, please check it. */",
}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Banner    Banner    `yaml:"banner" mapstructure:"banner"`
	Files     Files     `yaml:"files" mapstructure:"files"`
	Detection Detection `yaml:"detection" mapstructure:"detection"`
}

type Banner struct {
	Lines  []string `yaml:"lines" mapstructure:"lines"`
	Marker string   `yaml:"marker" mapstructure:"marker"`
}

type Files struct {
	Extensions     []string `yaml:"extensions" mapstructure:"extensions"`
	IgnorePatterns []string `yaml:"ignore_patterns" mapstructure:"ignore_patterns"`
	GitTracked     bool     `yaml:"git_tracked" mapstructure:"git_tracked"`
}

type Detection struct {
	MaxScanBytes  int      `yaml:"max_scan_bytes" mapstructure:"max_scan_bytes"`
	KnownVariants []string `yaml:"known_variants" mapstructure:"known_variants"`
}

// Default returns the built-in configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Banner: Banner{
			Lines:  slices.Clone(DefaultVariants[:2]),
			Marker: DefaultMarker,
		},
		Files: Files{
			Extensions: []string{".c"},
		},
		Detection: Detection{
			MaxScanBytes:  DefaultMaxScanBytes,
			KnownVariants: slices.Clone(DefaultVariants),
		},
	}
}

// SetDefaults registers the values of [Default] on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("banner.lines", d.Banner.Lines)
	v.SetDefault("banner.marker", d.Banner.Marker)
	v.SetDefault("files.extensions", d.Files.Extensions)
	v.SetDefault("files.git_tracked", false)
	v.SetDefault("detection.max_scan_bytes", d.Detection.MaxScanBytes)
	v.SetDefault("detection.known_variants", d.Detection.KnownVariants)
}

// Load registers defaults on v, unmarshals it and validates the result.
// Reading the config file is left to the caller.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that added banners are idempotent and removable.
func (c *Config) Validate() error {
	var merr error

	if c.Banner.Marker == "" {
		merr = multierror.Append(merr, errors.New("banner.marker must not be empty"))
	}
	if len(c.Banner.Lines) == 0 {
		merr = multierror.Append(merr, errors.New("banner.lines must not be empty"))
	}
	if len(c.Files.Extensions) == 0 {
		merr = multierror.Append(merr, errors.New("files.extensions must not be empty"))
	}
	if c.Detection.MaxScanBytes <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("detection.max_scan_bytes must be positive, got %d", c.Detection.MaxScanBytes))
	}
	for _, p := range c.Files.IgnorePatterns {
		if !doublestar.ValidatePattern(p) {
			merr = multierror.Append(merr, fmt.Errorf("files.ignore_patterns: bad pattern %q", p))
		}
	}

	if c.Banner.Marker != "" && len(c.Banner.Lines) > 0 &&
		!strings.Contains(strings.Join(c.Banner.Lines, "\n"), c.Banner.Marker) {
		merr = multierror.Append(merr, fmt.Errorf("banner.lines do not contain marker %q", c.Banner.Marker))
	}
	for _, line := range c.Banner.Lines {
		if !c.IsKnownVariant(line) {
			merr = multierror.Append(merr, fmt.Errorf("banner line %q is not a known variant and could not be removed", line))
		}
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, merr)
	}
	return nil
}

// BannerText is the exact byte sequence prepended by the adder: every banner
// line followed by a newline, then one blank line.
func (c *Config) BannerText() []byte {
	var b strings.Builder
	for _, line := range c.Banner.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

func (c *Config) ShouldProcess(file string) bool {
	for _, validExt := range c.Files.Extensions {
		if strings.HasSuffix(file, validExt) {
			return !c.IsIgnored(file)
		}
	}
	return false
}

// IsIgnored reports whether file matches one of the ignore globs. Patterns
// use forward slashes and support "**".
func (c *Config) IsIgnored(file string) bool {
	name := filepath.ToSlash(filepath.Clean(file))
	for _, pattern := range c.Files.IgnorePatterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// IsKnownVariant compares line against the known variants after trimming
// surrounding whitespace.
func (c *Config) IsKnownVariant(line string) bool {
	return slices.Contains(c.Detection.KnownVariants, strings.TrimSpace(line))
}
