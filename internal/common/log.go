package common

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LoggingEnabled controls whether Logf produces output.
var LoggingEnabled = true

// LogOutput is where Logf writes. Commands that print data on stdout
// should point it at os.Stderr.
var LogOutput io.Writer = os.Stdout

// Logf prints a formatted message if logging is enabled.
func Logf(format string, args ...interface{}) {
	if LoggingEnabled {
		fmt.Fprintf(LogOutput, format, args...)
	}
}

// formatDuration formats a duration with 2 decimal places.
// Returns a string like "1.23 ms" (no padding).
func formatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	// Handle durations >= 1 second
	if ms >= 1000 {
		sec := ms / 1000
		return fmt.Sprintf("%.2f s", sec)
	} else if ms < 0.01 {
		// Sub-0.01 ms: show in microseconds
		us := ms * 1000
		return fmt.Sprintf("%.2f us", us)
	}
	// Everything else in milliseconds with 2 decimal places
	return fmt.Sprintf("%.2f ms", ms)
}

// formatFill renders a fill report such as "filter: 2/65536 bits set (0.00%)".
func formatFill(label string, trueBits, totalBits int) string {
	pct := 0.0
	if totalBits > 0 {
		pct = 100 * float64(trueBits) / float64(totalBits)
	}
	return fmt.Sprintf("%s: %d/%d bits set (%.2f%%)", label, trueBits, totalBits, pct)
}

// LogDuration prints a message with the elapsed time since start.
// The duration is formatted with tight parens and right-padded to align messages.
func LogDuration(start time.Time, format string, args ...interface{}) {
	elapsed := time.Since(start)
	msg := fmt.Sprintf(format, args...)
	durStr := fmt.Sprintf("(%s)", formatDuration(elapsed))
	Logf("%-10s%s\n", durStr, msg)
}

// LogFill prints how many of totalBits are set.
func LogFill(label string, trueBits, totalBits int) {
	Logf("%s\n", formatFill(label, trueBits, totalBits))
}
