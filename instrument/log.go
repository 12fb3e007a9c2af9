// SPDX-License-Identifier: MIT

package instrument

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// LogReporter writes one log line per measurement. Successful calls are
// logged at Level (the zero value is log.InfoLevel), failed calls at Warn
// with the error attached.
type LogReporter struct {
	Logger *log.Logger
	Level  log.Level
}

// NewLogReporter returns a LogReporter writing to l at Info level.
// A nil l falls back to log.Default().
func NewLogReporter(l *log.Logger) *LogReporter {
	return &LogReporter{Logger: l, Level: log.InfoLevel}
}

// Report implements Reporter.
func (r *LogReporter) Report(name string, elapsed time.Duration, err error) {
	l := r.Logger
	if l == nil {
		l = log.Default()
	}
	msg := fmt.Sprintf("%s took %s", name, formatMillis(elapsed))
	if err != nil {
		l.Warn(msg, "op", name, "err", err)
		return
	}
	l.Log(r.Level, msg, "op", name)
}

// formatMillis renders d in milliseconds with two decimals, e.g. "0.42ms".
func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
