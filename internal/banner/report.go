// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgYellow)
	failedColor  = color.New(color.FgRed)
)

// ReportAdd prints the summary of an add run.
func ReportAdd(w io.Writer, label string, r *Result) {
	fmt.Fprintf(w, "Total %s files: %d\n", label, r.Scanned)
	fmt.Fprintf(w, "Updated: %d\n", len(r.Updated))
	for _, p := range r.Updated {
		addedColor.Fprintf(w, "  + %s\n", p)
	}
	if len(r.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped (errors): %d\n", len(r.Skipped))
		for _, s := range r.Skipped {
			failedColor.Fprintf(w, "  - %s: %s\n", s.File, s.Reason)
		}
	}
}

// ReportRemove prints the summary of a remove run.
func ReportRemove(w io.Writer, label string, r *Result) {
	for _, p := range r.Updated {
		removedColor.Fprintf(w, "- cleaned: %s\n", p)
	}
	for _, s := range r.Skipped {
		failedColor.Fprintf(w, "! failed: %s: %s\n", s.File, s.Reason)
	}
	fmt.Fprintf(w, "\n%s files scanned: %d\n", label, r.Scanned)
	fmt.Fprintf(w, "Files modified: %d\n", len(r.Updated))
}

// ReportCheck prints the issues found by a check run.
func ReportCheck(w io.Writer, issues []Issue) {
	for _, issue := range issues {
		fmt.Fprintf(w, "%s: %s\n", issue.File, issue.Problem)
	}
	if len(issues) > 0 {
		fmt.Fprintf(w, "\nFound %d files without a banner\n", len(issues))
	}
}

// Label names the scanned file kinds for the summary, e.g. ".c" or ".c/.h".
func Label(extensions []string) string {
	return strings.Join(extensions, "/")
}
