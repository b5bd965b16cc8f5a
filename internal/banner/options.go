// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/YakDriver/bannerplop/internal/config"
	"github.com/natefinch/atomic"
)

type Option func(*runner)

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *runner) { r.logger = logger }
}

// WithProgress renders a progress bar to w while files are processed.
func WithProgress(w io.Writer) Option {
	return func(r *runner) { r.progress = w }
}

// WithDryRun reports what would change without writing any file.
func WithDryRun(dryRun bool) Option {
	return func(r *runner) { r.dryRun = dryRun }
}

type runner struct {
	config   *config.Config
	logger   *slog.Logger
	progress io.Writer
	dryRun   bool
}

func newRunner(cfg *config.Config, opts []Option) runner {
	r := runner{
		config:   cfg,
		logger:   slog.Default(),
		progress: io.Discard,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// writeFile replaces the content of file. Symlinks are written through to
// their target, and files that cannot be opened for writing fail the same way
// a plain write would.
func (r *runner) writeFile(file string, data []byte) error {
	target, err := filepath.EvalSymlinks(file)
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(target, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if r.dryRun {
		r.logger.Info("dry run, not writing", "file", file)
		return nil
	}
	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return err
	}
	// The replacement is a new inode; keep the original permissions.
	return os.Chmod(target, info.Mode().Perm())
}
