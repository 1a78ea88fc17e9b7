package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/pipeline"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// styles are rebuilt per render so a theme change applies to the next command.
type styles struct {
	title, header, value, muted, accent, dim lipgloss.Style
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		accent: lipgloss.NewStyle().Foreground(t.Accent),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	st := currentStyles()
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(st.title.Render(title))
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned, the rest right-aligned. A row of exactly "---" is
// drawn as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	st := currentStyles()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(st.dim.Render(left))
		for i, w := range widths {
			b.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(st.dim.Render(mid))
			}
		}
		b.WriteString(st.dim.Render(right))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(st.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(st.header.Render(" " + pad(h, widths[i], false) + " "))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(st.value.Render(" " + pad(cell, widths[i], i > 0) + " "))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// pad aligns s in a field of w display cells.
func pad(s string, w int, right bool) string {
	n := w - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// RenderProgressBar renders a simple text progress bar for done of total.
func RenderProgressBar(done, total int, width int) string {
	if total <= 0 {
		return ""
	}
	st := currentStyles()

	pct := float64(done) / float64(total)
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))

	bar := st.accent.Render(strings.Repeat("█", filled)) + st.dim.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("[%s] %s", bar, FormatCount(done, total))
}

// RenderSparkline renders mood scores on a fixed 1..5 block scale. Days with
// present[i] == false render as "·" so missing days never read as low moods.
func RenderSparkline(values []float64, present []bool) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var b strings.Builder
	for i, v := range values {
		if i < len(present) && !present[i] {
			b.WriteRune('·')
			continue
		}
		idx := int((v - 1) / 4 * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderHabitGrid renders the habit grid as a table with one column per day.
// Done days are "●", open days "·".
func RenderHabitGrid(g pipeline.HabitGrid) string {
	headers := []string{"Habit"}
	for _, d := range g.Dates {
		headers = append(headers, d[5:])
	}
	if len(g.Rows) > 0 {
		for i, c := range g.Rows[0].Cells {
			headers[i+1] = c.Weekday[:2] + " " + fmt.Sprintf("%2d", c.Day)
		}
	}

	rows := make([][]string, 0, len(g.Rows))
	for _, r := range g.Rows {
		row := []string{r.Name}
		for _, c := range r.Cells {
			mark := "·"
			if c.Done {
				mark = "●"
			}
			row = append(row, mark)
		}
		rows = append(rows, row)
	}

	return RenderTable(Table{Headers: headers, Rows: rows})
}
