// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

// Outcome is what happened to a single file.
type Outcome int

const (
	// Unchanged files were read but not written.
	Unchanged Outcome = iota
	// Updated files were rewritten, or would have been in a dry run.
	Updated
	// Failed files could not be read or written.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type FileResult struct {
	File    string
	Outcome Outcome
	Err     error
}

type Issue struct {
	File    string
	Problem string
}

type Skip struct {
	File   string
	Reason string
}

// Result aggregates a single add or remove run.
type Result struct {
	Scanned int
	Updated []string
	Skipped []Skip
}

func (r *Result) record(fr FileResult) {
	switch fr.Outcome {
	case Updated:
		r.Updated = append(r.Updated, fr.File)
	case Failed:
		r.Skipped = append(r.Skipped, Skip{File: fr.File, Reason: fr.Reason()})
	}
}

// Reason describes why a file was not updated.
func (fr FileResult) Reason() string {
	switch {
	case fr.Err != nil:
		return fr.Err.Error()
	case fr.Outcome == Updated:
		return ""
	default:
		return fr.Outcome.String()
	}
}
