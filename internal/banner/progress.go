// Copyright IBM Corp. 2014, 2025
// SPDX-License-Identifier: MPL-2.0

package banner

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

func (r *runner) newBar(total int, description string) *progressbar.ProgressBar {
	if r.progress == io.Discard {
		return progressbar.DefaultSilent(int64(total), description)
	}
	return progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
