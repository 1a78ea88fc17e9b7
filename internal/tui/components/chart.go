package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Mood charts always span the full score range so a flat week of 3s does not
// look like a week of 5s.
const (
	chartLow  = 1
	chartHigh = 5
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline scaled to [lo, hi]. Entries with
// present[i] == false are drawn as a dim dot instead of a bar.
func Sparkline(values []float64, present []bool, lo, hi float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	gapStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for i, v := range values {
		if i < len(present) && !present[i] {
			buf.WriteString(gapStyle.Render("·"))
			continue
		}
		buf.WriteString(barStyle.Render(string(sparkRune(v, lo, hi))))
	}
	return buf.String()
}

func sparkRune(v, lo, hi float64) rune {
	if hi <= lo {
		return sparkBlocks[len(sparkBlocks)-1]
	}
	idx := int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
	if idx >= len(sparkBlocks) {
		idx = len(sparkBlocks) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sparkBlocks[idx]
}

// cell kinds for the mood plot
const (
	cellEmpty = iota
	cellPoint
	cellLink
)

// plotMood lays out the chart area. rows[0] is the top score (5). A point is
// placed at its score; adjacent recorded days are joined by a vertical link
// in the later column. Gaps break the line.
func plotMood(values []float64, present []bool) [][]int {
	n := len(values)
	levels := chartHigh - chartLow + 1
	rows := make([][]int, levels)
	for r := range rows {
		rows[r] = make([]int, n)
	}

	rowOf := func(v float64) int {
		s := int(v + 0.5)
		if s < chartLow {
			s = chartLow
		}
		if s > chartHigh {
			s = chartHigh
		}
		return chartHigh - s
	}

	for i, v := range values {
		if i < len(present) && !present[i] {
			continue
		}
		r := rowOf(v)
		rows[r][i] = cellPoint
		if i == 0 || (i-1 < len(present) && !present[i-1]) {
			continue
		}
		prev := rowOf(values[i-1])
		lo, hi := min(prev, r), max(prev, r)
		for k := lo + 1; k < hi; k++ {
			rows[k][i] = cellLink
		}
	}
	return rows
}

// MoodChart renders the mood series as a dot-and-stem line chart on a fixed
// 1..5 scale. Recorded days are joined, missing days leave a break and a dim
// tick on the x-axis. labels must match values; first, middle and last are
// printed below the axis.
func MoodChart(values []float64, present []bool, labels []string, color lipgloss.Color, width int) string {
	n := len(values)
	if n == 0 {
		return ""
	}

	t := theme.Active
	const yLabelW = 2

	chartW := width - yLabelW - 1
	if chartW < n {
		return Sparkline(values, present, chartLow, chartHigh, color)
	}
	colW := chartW / n
	if colW > 3 {
		colW = 3
	}
	axisLen := colW * n

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pointStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	linkStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	rows := plotMood(values, present)
	pad := strings.Repeat(" ", colW-1)

	var b strings.Builder
	for r, row := range rows {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*d", yLabelW, chartHigh-r)))
		b.WriteString(axisStyle.Render("│"))
		for _, c := range row {
			switch c {
			case cellPoint:
				b.WriteString(pointStyle.Render("●"))
			case cellLink:
				b.WriteString(linkStyle.Render("│"))
			default:
				b.WriteString(blank.Render(" "))
			}
			if colW > 1 {
				b.WriteString(blank.Render(pad))
			}
		}
		b.WriteString("\n")
	}

	// X-axis, with a dot under days that have no entry
	b.WriteString(axisStyle.Render(strings.Repeat(" ", yLabelW) + "└"))
	for i := 0; i < n; i++ {
		tick := "─"
		if i < len(present) && !present[i] {
			tick = "·"
		}
		b.WriteString(axisStyle.Render(tick + strings.Repeat("─", colW-1)))
	}

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(axisLabels(labels, colW, axisLen)))
	}

	return b.String()
}

// axisLabels places the first, middle and last labels under their columns
// without overlap.
func axisLabels(labels []string, colW, axisLen int) string {
	buf := []rune(strings.Repeat(" ", axisLen))
	n := len(labels)
	idxs := []int{0}
	if n > 2 {
		idxs = append(idxs, n/2)
	}
	if n > 1 {
		idxs = append(idxs, n-1)
	}

	lastEnd := -1
	for _, i := range idxs {
		lbl := []rune(labels[i])
		pos := i * colW
		if pos+len(lbl) > axisLen {
			pos = axisLen - len(lbl)
		}
		if pos <= lastEnd || pos < 0 {
			continue
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	return strings.TrimRight(string(buf), " ")
}
