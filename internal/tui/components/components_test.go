package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/lifetrack/internal/pipeline"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"
)

func init() {
	// Plain output keeps assertions on glyph positions readable
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{80, 3}, {81, 4}, {10, 10}, {7, 2}} {
		sum := 0
		for _, w := range LayoutRow(tc.total, tc.n) {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowMatchesTallestCard(t *testing.T) {
	theme.SetActive("pink")

	short := ContentCard("Short", "Content", 22, false)
	tall := ContentCard("Tall", "1\n2\n3\n4\n5", 22, true)

	joined := CardRow([]string{tall, short})
	if got, want := lipgloss.Height(joined), lipgloss.Height(tall); got != want {
		t.Fatalf("joined height = %d, want %d", got, want)
	}
	if got, want := lipgloss.Width(joined), lipgloss.Width(tall)+lipgloss.Width(short); got != want {
		t.Fatalf("joined width = %d, want %d", got, want)
	}
}

func TestPlotMoodBreaksAtGaps(t *testing.T) {
	values := []float64{1, 5, 0, 3}
	present := []bool{true, true, false, true}

	rows := plotMood(values, present)
	if len(rows) != 5 {
		t.Fatalf("rows = %d, want 5 score levels", len(rows))
	}

	// column 0: score 1 at the bottom row
	if rows[4][0] != cellPoint {
		t.Error("score 1 should sit on the bottom row")
	}
	// column 1: score 5 at top, linked down through 4..2 to the previous 1
	if rows[0][1] != cellPoint {
		t.Error("score 5 should sit on the top row")
	}
	for r := 1; r <= 3; r++ {
		if rows[r][1] != cellLink {
			t.Errorf("row %d col 1 = %d, want link", r, rows[r][1])
		}
	}
	// column 2 is a gap: nothing drawn
	for r := range rows {
		if rows[r][2] != cellEmpty {
			t.Errorf("gap column has cell %d at row %d", rows[r][2], r)
		}
	}
	// column 3 follows a gap so it is not linked back
	if rows[2][3] != cellPoint {
		t.Error("score 3 should sit on the middle row")
	}
	for _, r := range []int{0, 1, 3, 4} {
		if rows[r][3] != cellEmpty {
			t.Errorf("row %d col 3 should be empty after a gap", r)
		}
	}
}

func TestMoodChartRendersAxisAndLabels(t *testing.T) {
	theme.SetActive("blue")

	values := []float64{4, 0, 2, 3, 5}
	present := []bool{true, false, true, true, true}
	labels := []string{"3/1", "3/2", "3/3", "3/4", "3/5"}

	out := MoodChart(values, present, labels, theme.Active.Chart, 40)
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("chart has %d lines, want 5 levels + axis + labels:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], " 5│") || !strings.HasPrefix(lines[4], " 1│") {
		t.Errorf("y-axis labels wrong:\n%s", out)
	}
	if !strings.Contains(lines[5], "·") {
		t.Errorf("x-axis should mark the missing day: %q", lines[5])
	}
	for _, l := range []string{"3/1", "3/3", "3/5"} {
		if !strings.Contains(lines[6], l) {
			t.Errorf("label %q missing from %q", l, lines[6])
		}
	}
}

func TestMoodChartFallsBackToSparkline(t *testing.T) {
	out := MoodChart([]float64{1, 0, 5}, []bool{true, false, true}, nil, theme.Active.Chart, 4)
	if out != "▁·█" {
		t.Fatalf("narrow chart = %q, want sparkline", out)
	}
}

func TestHabitGridMarksDoneDays(t *testing.T) {
	theme.SetActive("mono")

	g := pipeline.HabitGrid{
		Dates: []string{"2024-01-01", "2024-01-02"},
		Rows: []pipeline.GridRow{{
			HabitID: "a",
			Name:    "Read",
			Cells: []pipeline.GridCell{
				{Date: "2024-01-01", Weekday: "Mon", Day: 1, Done: true},
				{Date: "2024-01-02", Weekday: "Tue", Day: 2},
			},
		}},
	}

	out := HabitGrid(g, -1, -1, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("grid has %d lines, want header x2 + 1 row:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Mon") || !strings.Contains(lines[0], "Tue") {
		t.Errorf("weekday header missing: %q", lines[0])
	}
	row := lines[2]
	if !strings.HasPrefix(row, "Read") {
		t.Errorf("row should start with the habit name: %q", row)
	}
	if strings.Index(row, "●") > strings.Index(row, "○") {
		t.Errorf("done marker should come before open marker: %q", row)
	}
}

func TestHabitGridEmpty(t *testing.T) {
	out := HabitGrid(pipeline.HabitGrid{Dates: []string{"2024-01-01"}}, 0, 0, 60)
	if !strings.Contains(out, "No habits yet") {
		t.Fatalf("empty grid = %q", out)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unknown key should return -1")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Meditate daily", 6); got != "Medit…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("Read", 6); got != "Read" {
		t.Fatalf("truncate short = %q", got)
	}
}
