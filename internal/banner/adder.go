// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/YakDriver/bannerplop/internal/config"
)

const reasonFailedToUpdate = "failed to update"

var ErrMarkerPresent = errors.New("banner marker already present")

type Adder struct {
	runner
}

func NewAdder(cfg *config.Config, opts ...Option) *Adder {
	return &Adder{runner: newRunner(cfg, opts)}
}

// Add prepends the banner to every candidate under path that does not
// already carry the marker. Per-file failures end up in Result.Skipped.
func (a *Adder) Add(path string) (*Result, error) {
	filesToProcess, err := discover(path, a.config, a.logger)
	if err != nil {
		return nil, err
	}

	result := &Result{Scanned: len(filesToProcess)}
	if len(filesToProcess) == 0 {
		return result, nil
	}

	bar := a.newBar(len(filesToProcess), "Adding banners")
	for _, file := range filesToProcess {
		_ = bar.Add(1)

		if a.ShouldSkip(file) {
			a.logger.Debug("banner present, skipping", "file", file)
			continue
		}

		fr := a.AddBanner(file)
		switch fr.Outcome {
		case Updated:
			result.Updated = append(result.Updated, file)
		default:
			a.logger.Debug("could not add banner", "file", file, "outcome", fr.Outcome, "err", fr.Err)
			result.Skipped = append(result.Skipped, Skip{
				File:   file,
				Reason: reasonFailedToUpdate + ": " + fr.Reason(),
			})
		}
	}
	_ = bar.Finish()

	return result, nil
}

// ShouldSkip reads at most detection.max_scan_bytes of file and reports
// whether the marker is present. Unreadable files are skipped.
func (a *Adder) ShouldSkip(file string) bool {
	f, err := os.Open(file)
	if err != nil {
		return true
	}
	defer f.Close()

	head, err := io.ReadAll(io.LimitReader(f, int64(a.config.Detection.MaxScanBytes)))
	if err != nil {
		return true
	}
	return bytes.Contains(head, []byte(a.config.Banner.Marker))
}

// AddBanner writes the banner followed by the original bytes of file unless
// the marker appears anywhere in it.
func (a *Adder) AddBanner(file string) FileResult {
	content, err := os.ReadFile(file)
	if err != nil {
		return FileResult{File: file, Outcome: Failed, Err: err}
	}
	if bytes.Contains(content, []byte(a.config.Banner.Marker)) {
		return FileResult{File: file, Outcome: Unchanged, Err: ErrMarkerPresent}
	}

	bannerText := a.config.BannerText()
	buf := make([]byte, 0, len(bannerText)+len(content))
	buf = append(buf, bannerText...)
	buf = append(buf, content...)

	if err := a.writeFile(file, buf); err != nil {
		return FileResult{File: file, Outcome: Failed, Err: fmt.Errorf("write %s: %w", file, err)}
	}
	return FileResult{File: file, Outcome: Updated}
}
