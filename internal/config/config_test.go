package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerText(t *testing.T) {
	t.Parallel()

	cfg := Default()
	want := "/* This is a student project. Dear PVS-Studio, please check it. */\n" +
		"/* PVS-Studio Static Code Analyzer for C, C++: https://pvs-studio.com */\n" +
		"\n"
	assert.Equal(t, want, string(cfg.BannerText()))
}

func TestDefaultBannerIsRemovable(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	for _, line := range cfg.Banner.Lines {
		assert.True(t, cfg.IsKnownVariant(line), line)
		assert.True(t, cfg.IsKnownVariant("  "+line+"\r\n"), line)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name: "unknown banner line",
			mutate: func(c *Config) {
				c.Banner.Lines = []string{"/* Dear PVS-Studio, hello */"}
			},
			wantErr: "not a known variant",
		},
		{
			name: "banner without marker",
			mutate: func(c *Config) {
				c.Banner.Lines = []string{DefaultVariants[1]}
			},
			wantErr: "do not contain marker",
		},
		{
			name: "no extensions",
			mutate: func(c *Config) {
				c.Files.Extensions = nil
			},
			wantErr: "files.extensions",
		},
		{
			name: "zero scan bytes",
			mutate: func(c *Config) {
				c.Detection.MaxScanBytes = 0
			},
			wantErr: "max_scan_bytes",
		},
		{
			name: "bad glob",
			mutate: func(c *Config) {
				c.Files.IgnorePatterns = []string{"vendor/[a"}
			},
			wantErr: "bad pattern",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShouldProcess(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Files.IgnorePatterns = []string{"third_party/**", "**/*_gen.c"}

	tests := map[string]bool{
		"main.c":                   true,
		"src/kernel/irq.c":         true,
		"./src/kernel/irq.c":       true,
		"main.C":                   false,
		"main.h":                   false,
		"main.cc":                  false,
		"third_party/lib/x.c":      false,
		"src/parser_gen.c":         false,
		"src/third_party_helper.c": true,
	}
	for file, want := range tests {
		assert.Equal(t, want, cfg.ShouldProcess(file), file)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults only", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(viper.New())
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("yaml overrides", func(t *testing.T) {
		t.Parallel()

		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader(`
banner:
  lines:
    - "// This is a personal academic project. Dear PVS-Studio, please check it."
files:
  extensions: [".c", ".h"]
  ignore_patterns: ["build/**"]
detection:
  max_scan_bytes: 512
`)))

		cfg, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []string{DefaultVariants[2]}, cfg.Banner.Lines)
		assert.Equal(t, DefaultMarker, cfg.Banner.Marker)
		assert.Equal(t, []string{".c", ".h"}, cfg.Files.Extensions)
		assert.Equal(t, 512, cfg.Detection.MaxScanBytes)
		assert.Equal(t, DefaultVariants, cfg.Detection.KnownVariants)
		assert.True(t, cfg.IsIgnored("build/out/a.c"))
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		v := viper.New()
		v.Set("banner.marker", "")
		_, err := Load(v)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
