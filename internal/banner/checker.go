// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"bytes"
	"io"
	"os"

	"github.com/YakDriver/bannerplop/internal/config"
)

type Checker struct {
	runner
}

func NewChecker(cfg *config.Config, opts ...Option) *Checker {
	return &Checker{runner: newRunner(cfg, opts)}
}

// Check reports every candidate under path whose leading bytes do not
// contain the marker.
func (c *Checker) Check(path string) ([]Issue, error) {
	filesToProcess, err := discover(path, c.config, c.logger)
	if err != nil {
		return nil, err
	}

	if len(filesToProcess) == 0 {
		return nil, nil
	}

	bar := c.newBar(len(filesToProcess), "Checking files")
	var issues []Issue

	for _, file := range filesToProcess {
		if issue := c.checkFile(file); issue != nil {
			issues = append(issues, *issue)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return issues, nil
}

func (c *Checker) checkFile(file string) *Issue {
	f, err := os.Open(file)
	if err != nil {
		return &Issue{File: file, Problem: "could not read file"}
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, int64(c.config.Detection.MaxScanBytes)))
	if err != nil {
		return &Issue{File: file, Problem: "could not read file"}
	}
	if !bytes.Contains(head, []byte(c.config.Banner.Marker)) {
		return &Issue{File: file, Problem: "missing banner"}
	}
	return nil
}
