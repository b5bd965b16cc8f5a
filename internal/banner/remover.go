// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/YakDriver/bannerplop/internal/config"
	"golang.org/x/text/encoding/unicode"
)

type Remover struct {
	runner
}

func NewRemover(cfg *config.Config, opts ...Option) *Remover {
	return &Remover{runner: newRunner(cfg, opts)}
}

// Remove strips known banners from every candidate under path.
func (r *Remover) Remove(path string) (*Result, error) {
	filesToProcess, err := discover(path, r.config, r.logger)
	if err != nil {
		return nil, err
	}

	result := &Result{Scanned: len(filesToProcess)}
	if len(filesToProcess) == 0 {
		return result, nil
	}

	bar := r.newBar(len(filesToProcess), "Removing banners")
	for _, file := range filesToProcess {
		fr := r.ProcessFile(file)
		if fr.Outcome == Failed {
			r.logger.Warn("could not remove banner", "file", file, "err", fr.Err)
		}
		result.record(fr)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return result, nil
}

// StripBanner drops the leading run of known variants and, if any were
// dropped, the blank lines right after them. Lines keep their terminators.
// The input is returned as is when nothing matches.
func (r *Remover) StripBanner(lines []string) []string {
	idx := 0
	for idx < len(lines) && r.config.IsKnownVariant(lines[idx]) {
		idx++
	}
	if idx == 0 {
		return lines
	}
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	return lines[idx:]
}

// ProcessFile rewrites file without its banner. Files are only written when
// something was stripped.
func (r *Remover) ProcessFile(file string) FileResult {
	content, err := os.ReadFile(file)
	if err != nil {
		return FileResult{File: file, Outcome: Failed, Err: err}
	}

	raw := splitLines(content)
	lines := make([]string, len(raw))
	dec := unicode.UTF8.NewDecoder()
	for i, line := range raw {
		// Decoded text is only compared; malformed input becomes U+FFFD.
		text, _ := dec.Bytes(line)
		lines[i] = string(text)
	}

	kept := r.StripBanner(lines)
	if len(kept) == len(lines) {
		return FileResult{File: file, Outcome: Unchanged}
	}

	// Write back the original bytes of the remaining lines so malformed
	// sequences survive untouched.
	rest := bytes.Join(raw[len(raw)-len(kept):], nil)
	if err := r.writeFile(file, rest); err != nil {
		return FileResult{File: file, Outcome: Failed, Err: fmt.Errorf("write %s: %w", file, err)}
	}
	return FileResult{File: file, Outcome: Updated}
}

// splitLines splits content after every '\n'. The last line may lack one.
func splitLines(content []byte) [][]byte {
	if len(content) == 0 {
		return nil
	}
	lines := bytes.SplitAfter(content, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}
