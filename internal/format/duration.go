// Package format holds the duration formatting shared by the status line,
// the logs and the benchmark report.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a duration for humans: microseconds below
// a millisecond, milliseconds below a second, time.Duration.String above.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders d as fractional seconds with microsecond precision,
// e.g. "0.012345". Used where output is compared across runs.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}
