package workout

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration converts a duration to a human-friendly string.
// Examples: 90m → "1h 30m", 30m → "30m", 2h → "2h 0m".
func FormatDuration(d time.Duration) string {
	m := int(d.Round(time.Minute) / time.Minute)
	if m <= 0 {
		return "0m"
	}

	hours := m / 60
	mins := m % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", mins))

	return strings.Join(parts, " ")
}
