// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/YakDriver/bannerplop/internal/banner"
	"github.com/YakDriver/bannerplop/internal/config"
	"github.com/YakDriver/bannerplop/version"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:     "bannerplop",
	Short:   "Add or remove static analyzer banners in source files",
	Version: version.Version(),
	Long: `bannerplop prepends the "Dear PVS-Studio, please check it." comment banner to
source files, or strips it again, across a directory tree.

With no flags every command works on the current directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := new(slog.Level)
		if err := level.UnmarshalText([]byte(viper.GetString("log_level"))); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}

		w := cmd.ErrOrStderr()
		slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
			Level:      *level,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		})))

		return loadConfig()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bannerplop.yaml)")
	rootCmd.PersistentFlags().StringP("path", "p", ".", "path to process")
	rootCmd.PersistentFlags().Bool("dry-run", false, "report changes without writing files")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-progress", false, "never show a progress bar")

	rootCmd.SetVersionTemplate("v{{.Version}}\n")

	bindFlags(viper.GetViper())
}

func bindFlags(v *viper.Viper) {
	flags := rootCmd.PersistentFlags()
	_ = v.BindPFlag("path", flags.Lookup("path"))
	_ = v.BindPFlag("dry_run", flags.Lookup("dry-run"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("no_progress", flags.Lookup("no-progress"))
}

func loadConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bannerplop")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("BANNERPLOP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		slog.Debug("no config file, using defaults")
	} else {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}

	var err error
	cfg, err = config.Load(viper.GetViper())
	return err
}

// runOptions builds the banner options shared by all subcommands.
func runOptions(cmd *cobra.Command) []banner.Option {
	opts := []banner.Option{
		banner.WithLogger(slog.Default()),
		banner.WithDryRun(viper.GetBool("dry_run")),
	}
	if w := cmd.ErrOrStderr(); !viper.GetBool("no_progress") && isTerminal(w) {
		opts = append(opts, banner.WithProgress(w))
	}
	return opts
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
