// Package dates produces calendar date keys and rolling windows of them.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the date-key format used by every store and view.
const Layout = "2006-01-02"

// ErrInvalidKey is returned for strings that are not YYYY-MM-DD calendar dates.
var ErrInvalidKey = errors.New("invalid date key (must be YYYY-MM-DD)")

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// SystemClock is the host's wall clock.
func SystemClock() time.Time { return time.Now() }

// Key formats t as a date key in t's own location.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Parse returns local midnight for a date key.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	// time.Parse accepts some non-canonical inputs; the key must round-trip.
	if t.Format(Layout) != key {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return t, nil
}

// Valid reports whether key is a well-formed calendar date.
func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// midnight truncates t to the start of its calendar day without leaving its
// location. Truncate(24h) would cut in UTC.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// LastNDays returns n consecutive date keys, oldest first, ending at ref's
// calendar date.
func LastNDays(n int, ref time.Time) []string {
	if n <= 0 {
		return []string{}
	}
	day := midnight(ref)
	keys := make([]string, n)
	for i := 0; i < n; i++ {
		keys[i] = Key(day.AddDate(0, 0, i-(n-1)))
	}
	return keys
}

// After reports whether key a is a later calendar date than b.
// Keys compare lexically because the layout is zero padded.
func After(a, b string) bool {
	return a > b
}

// ShortLabel renders a key as M/D without padding, e.g. "1/2".
// Invalid keys are returned unchanged.
func ShortLabel(key string) string {
	t, err := Parse(key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// Weekday returns the three-letter weekday of a key, or "???" if invalid.
func Weekday(key string) string {
	t, err := Parse(key)
	if err != nil {
		return "???"
	}
	return WeekdayName(int(t.Weekday()))
}

// WeekdayName returns a 3-letter day abbreviation from a weekday number.
func WeekdayName(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// DayOfMonth returns the day number of a key, or 0 if invalid.
func DayOfMonth(key string) int {
	t, err := Parse(key)
	if err != nil {
		return 0
	}
	return t.Day()
}
