// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/YakDriver/bannerplop/internal/config"
	"github.com/hashicorp/go-multierror"
)

// discover returns the candidate files under path. Unreadable directories are
// skipped and logged; only a missing root is an error.
func discover(path string, cfg *config.Config, logger *slog.Logger) ([]string, error) {
	var (
		files []string
		err   error
	)
	if cfg.Files.GitTracked {
		files, err = getGitFiles(path)
	} else {
		files, err = getAllFiles(path)
	}

	var merr *multierror.Error
	if me, ok := err.(*multierror.Error); ok {
		merr = me
	} else if err != nil {
		return nil, err
	}
	if merr != nil {
		logger.Warn("some directories could not be read", "count", merr.Len(), "err", merr.ErrorOrNil())
	}

	var filesToProcess []string
	for _, file := range files {
		rel, relErr := filepath.Rel(path, file)
		if relErr != nil {
			rel = file
		}
		if cfg.ShouldProcess(rel) {
			filesToProcess = append(filesToProcess, file)
		}
	}
	return filesToProcess, nil
}

func getGitFiles(path string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "-z", "--", ".")
	cmd.Dir = path
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files in %s: %w", path, err)
	}

	var files []string
	for _, line := range strings.Split(string(output), "\x00") {
		if line == "" {
			continue
		}
		p := filepath.Join(path, filepath.FromSlash(line))
		if isRegular(p) {
			files = append(files, p)
		}
	}
	return files, nil
}

// getAllFiles walks path in lexical order. Errors below the root are
// collected into a *multierror.Error alongside the files found.
func getAllFiles(path string) ([]string, error) {
	var (
		files []string
		merr  *multierror.Error
	)
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil || p == path {
				return err
			}
			merr = multierror.Append(merr, err)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Type().IsRegular() || (d.Type()&fs.ModeSymlink != 0 && isRegular(p)) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, merr.ErrorOrNil()
}

func isRegular(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
