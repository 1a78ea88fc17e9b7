package tui

import (
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/cli"
	"github.com/theirongolddev/lifetrack/internal/tui/components"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// habitsState tracks the habits tab: a cursor over the grid and the
// add-habit input.
type habitsState struct {
	row    int
	col    int // day index in the window, last is today
	days   int
	adding bool
	input  textinput.Model
}

func newHabitsState(days int) habitsState {
	return habitsState{days: days, col: days - 1}
}

func newHabitInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "New habit name"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Prompt = "+ "
	return ti
}

// clamp keeps the row cursor inside a list of n habits.
func (s *habitsState) clamp(n int) {
	if s.row >= n {
		s.row = n - 1
	}
	if s.row < 0 {
		s.row = 0
	}
}

func (a App) updateHabits(key string) (tea.Model, tea.Cmd) {
	habits := a.tr.Habits()

	switch key {
	case "j", "down":
		if a.habits.row < len(habits)-1 {
			a.habits.row++
		}
	case "k", "up":
		if a.habits.row > 0 {
			a.habits.row--
		}
	case "left":
		if a.habits.col > 0 {
			a.habits.col--
		}
	case "right":
		if a.habits.col < a.habits.days-1 {
			a.habits.col++
		}
	case "a":
		a.habits.adding = true
		a.habits.input = newHabitInput()
		a.habits.input.Focus()
		return a, textinput.Blink
	case " ", "enter":
		if len(habits) == 0 {
			return a, nil
		}
		grid := a.tr.HabitGrid(a.habits.days)
		cell := grid.Rows[a.habits.row].Cells[a.habits.col]

		ctx, cancel := a.ctx()
		defer cancel()
		if _, err := a.tr.ToggleCompletion(ctx, habits[a.habits.row].ID, cell.Date); err != nil {
			return a, a.fail("toggle", err)
		}
	case "d", "delete":
		if len(habits) == 0 {
			return a, nil
		}
		h := habits[a.habits.row]

		ctx, cancel := a.ctx()
		defer cancel()
		if _, err := a.tr.DeleteHabit(ctx, h.ID); err != nil {
			return a, a.fail("delete", err)
		}
		a.habits.clamp(len(habits) - 1)
		return a, a.setStatus(fmt.Sprintf("Deleted %q", h.Name), false)
	}
	return a, nil
}

func (a App) updateHabitInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := a.habits.input.Value()
		a.habits.adding = false

		ctx, cancel := a.ctx()
		defer cancel()
		h, ok, err := a.tr.AddHabit(ctx, name)
		if err != nil {
			return a, a.fail("add", err)
		}
		if !ok {
			return a, nil
		}
		a.habits.row = len(a.tr.Habits()) - 1
		return a, a.setStatus(fmt.Sprintf("Added %q", h.Name), false)
	case "esc":
		a.habits.adding = false
		return a, nil
	}

	var cmd tea.Cmd
	a.habits.input, cmd = a.habits.input.Update(msg)
	return a, cmd
}

func (a App) renderHabitsTab(cw int) string {
	t := theme.Active
	s := a.tr.Summary(a.habits.days, a.opts.MoodDays)

	best := 0
	for _, h := range s.Habits {
		best = max(best, h.Streak)
	}
	rate := 0.0
	for _, h := range s.Habits {
		rate += h.Rate
	}
	if len(s.Habits) > 0 {
		rate /= float64(len(s.Habits))
	}

	stats := components.StatRow([]components.Stat{
		{Label: "Today", Value: cli.FormatCount(s.DoneToday, s.TotalHabits), Hint: "habits done"},
		{Label: fmt.Sprintf("Last %d days", a.habits.days), Value: cli.FormatPercent(rate), Hint: "completion"},
		{Label: "Best streak", Value: cli.FormatStreak(best)},
	}, cw)

	inner := components.CardInnerWidth(cw)
	body := components.HabitGrid(a.tr.HabitGrid(a.habits.days), a.habits.row, a.habits.col, inner)
	if a.habits.adding {
		body += "\n\n" + a.habits.input.View()
	} else if s.TotalHabits > 0 {
		body += "\n\n" + components.DayProgress("Today", s.DoneToday, s.TotalHabits, inner)
	}
	grid := components.ContentCard(fmt.Sprintf("Habits · last %d days", a.habits.days), body, cw, true)

	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Background).
		Render(" ●  done   ○  open")

	return lipgloss.JoinVertical(lipgloss.Left, stats, grid, hint)
}
