package dates

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestLastNDays_AcrossYearBoundary(t *testing.T) {
	got := LastNDays(7, mustDate(t, "2024-01-02").Add(15*time.Hour))
	want := []string{
		"2023-12-27", "2023-12-28", "2023-12-29", "2023-12-30",
		"2023-12-31", "2024-01-01", "2024-01-02",
	}
	if len(got) != len(want) {
		t.Fatalf("LastNDays len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("LastNDays[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLastNDays_Properties(t *testing.T) {
	refs := []string{"2024-03-01", "2024-02-29", "2023-03-01", "2025-01-01", "2026-10-15"}
	for _, ref := range refs {
		for _, n := range []int{1, 7, 30, 400} {
			keys := LastNDays(n, mustDate(t, ref))
			if len(keys) != n {
				t.Fatalf("ref=%s n=%d: len = %d", ref, n, len(keys))
			}
			if keys[n-1] != ref {
				t.Fatalf("ref=%s n=%d: last = %q", ref, n, keys[n-1])
			}
			for i := 1; i < n; i++ {
				prev := mustDate(t, keys[i-1])
				next := prev.AddDate(0, 0, 1)
				if Key(next) != keys[i] {
					t.Fatalf("ref=%s n=%d: keys[%d]=%q does not follow %q", ref, n, i, keys[i], keys[i-1])
				}
			}
		}
	}
}

func TestLastNDays_NonPositive(t *testing.T) {
	if got := LastNDays(0, time.Now()); len(got) != 0 {
		t.Fatalf("LastNDays(0) = %v, want empty", got)
	}
	if got := LastNDays(-3, time.Now()); len(got) != 0 {
		t.Fatalf("LastNDays(-3) = %v, want empty", got)
	}
}

func TestLastNDays_UsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	// 2024-05-31 23:30 UTC is already June 1st at UTC+14.
	ref := time.Date(2024, 5, 31, 23, 30, 0, 0, time.UTC).In(loc)
	keys := LastNDays(2, ref)
	if keys[0] != "2024-05-31" || keys[1] != "2024-06-01" {
		t.Fatalf("LastNDays in UTC+14 = %v", keys)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"2024-01-02", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-1-2", false},
		{"", false},
		{"yesterday", false},
		{"2024-13-01", false},
	}
	for _, tt := range tests {
		_, err := Parse(tt.key)
		if tt.valid && err != nil {
			t.Errorf("Parse(%q) error = %v", tt.key, err)
		}
		if !tt.valid {
			if err == nil {
				t.Errorf("Parse(%q) accepted invalid key", tt.key)
			} else if !errors.Is(err, ErrInvalidKey) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidKey", tt.key, err)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	if got := ShortLabel("2024-01-02"); got != "1/2" {
		t.Fatalf("ShortLabel = %q, want 1/2", got)
	}
	if got := ShortLabel("2024-12-25"); got != "12/25" {
		t.Fatalf("ShortLabel = %q, want 12/25", got)
	}
	if got := ShortLabel("bogus"); got != "bogus" {
		t.Fatalf("ShortLabel(bogus) = %q", got)
	}
	if got := Weekday("2024-01-02"); got != "Tue" {
		t.Fatalf("Weekday = %q, want Tue", got)
	}
	if got := DayOfMonth("2024-01-02"); got != 2 {
		t.Fatalf("DayOfMonth = %d, want 2", got)
	}
	if !After("2024-01-10", "2024-01-09") || After("2023-12-31", "2024-01-01") {
		t.Fatal("After ordering is wrong")
	}
}
