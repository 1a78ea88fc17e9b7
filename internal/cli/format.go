// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/lifetrack/internal/model"
)

// FormatPercent formats a 0-1 float as a whole percentage string.
// e.g., 0.4286 -> "43%"
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatAverage formats a mood average to one decimal, or "-" when nothing
// was recorded.
func FormatAverage(avg float64, recorded int) string {
	if recorded == 0 {
		return "-"
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// FormatStreak formats a day streak. e.g., 0 -> "-", 1 -> "1 day", 4 -> "4 days"
func FormatStreak(n int) string {
	switch {
	case n <= 0:
		return "-"
	case n == 1:
		return "1 day"
	default:
		return strconv.Itoa(n) + " days"
	}
}

// FormatScore renders a score with its face and label. e.g., 4 -> "(^_^) 4 Good"
func FormatScore(s model.Score) string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%s %d %s", s.Face(), int(s), s.Label())
}

// FormatCount formats "done/total". e.g., (2, 3) -> "2/3"
func FormatCount(done, total int) string {
	return strconv.Itoa(done) + "/" + strconv.Itoa(total)
}
