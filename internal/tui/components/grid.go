package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/pipeline"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const gridColW = 5

// HabitGrid renders one line per habit with a done/open marker for each day
// of the window. The cell at (cursorRow, cursorCol) is highlighted; pass -1
// to disable the cursor.
func HabitGrid(g pipeline.HabitGrid, cursorRow, cursorCol, width int) string {
	t := theme.Active

	nameW := width - gridColW*len(g.Dates) - 1
	if nameW > 24 {
		nameW = 24
	}
	if nameW < 8 {
		nameW = 8
	}

	blank := lipgloss.NewStyle().Background(t.Surface)
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	name := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	done := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	open := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	cursor := lipgloss.NewStyle().Foreground(t.Background).Background(t.AccentDeep).Bold(true)

	var b strings.Builder

	// Header: weekday over day-of-month, taken from the first row or dates
	if len(g.Rows) > 0 {
		b.WriteString(blank.Render(strings.Repeat(" ", nameW+1)))
		for _, c := range g.Rows[0].Cells {
			b.WriteString(muted.Render(center(c.Weekday, gridColW)))
		}
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", nameW+1)))
		for _, c := range g.Rows[0].Cells {
			b.WriteString(dim.Render(center(fmt.Sprintf("%d", c.Day), gridColW)))
		}
		b.WriteString("\n")
	}

	if len(g.Rows) == 0 {
		b.WriteString(dim.Render("No habits yet. Press a to add one."))
		return b.String()
	}

	for r, row := range g.Rows {
		label := truncate(row.Name, nameW)
		style := name
		if r == cursorRow {
			style = done
		}
		b.WriteString(style.Render(fmt.Sprintf("%-*s", nameW, label)))
		b.WriteString(blank.Render(" "))
		for c, cell := range row.Cells {
			mark, st := "○", open
			if cell.Done {
				mark, st = "●", done
			}
			if r == cursorRow && c == cursorCol {
				st = cursor
			}
			b.WriteString(blank.Render("  ") + st.Render(mark) + blank.Render("  "))
		}
		if r < len(g.Rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func center(s string, w int) string {
	n := lipgloss.Width(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
