package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/lifetrack/internal/cli"
	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
	"github.com/theirongolddev/lifetrack/internal/pipeline"
	"github.com/theirongolddev/lifetrack/internal/tui/components"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// moodState tracks which day the mood picker edits, as days before today.
// It never points past today.
type moodState struct {
	back int
}

func (a App) selectedMoodDay() string {
	return dates.Key(a.tr.Today().AddDate(0, 0, -a.mood.back))
}

func (a App) updateMood(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "left":
		if a.mood.back < a.opts.MoodDays-1 {
			a.mood.back++
		}
	case "right":
		if a.mood.back > 0 {
			a.mood.back--
		}
	case "t":
		a.mood.back = 0
	case "1", "2", "3", "4", "5":
		score := model.Score(key[0] - '0')
		day := a.selectedMoodDay()

		ctx, cancel := a.ctx()
		defer cancel()
		if err := a.tr.SetMood(ctx, day, score); err != nil {
			return a, a.fail("mood", err)
		}
		return a, a.setStatus(fmt.Sprintf("%s: %s", dates.ShortLabel(day), score.Label()), false)
	}
	return a, nil
}

func (a App) renderMoodTab(cw int) string {
	t := theme.Active
	day := a.selectedMoodDay()
	current, recorded := a.tr.GetMood(day)

	// Picker
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	face := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Padding(0, 1)
	picked := face.Foreground(t.Background).Background(t.Accent).Bold(true)

	when := "Today"
	if a.mood.back == 1 {
		when = "Yesterday"
	} else if a.mood.back > 1 {
		when = fmt.Sprintf("%s %s", dates.Weekday(day), dates.ShortLabel(day))
	}

	var picker strings.Builder
	picker.WriteString(label.Render(fmt.Sprintf("‹ %s ›  ", when)))
	for _, s := range model.Scores() {
		st := face
		if recorded && s == current {
			st = picked
		}
		picker.WriteString(st.Render(fmt.Sprintf("%d %s", int(s), s.Face())))
	}
	picker.WriteString("\n")
	if recorded {
		picker.WriteString(label.Render("Feeling " + strings.ToLower(current.Label())))
	} else {
		picker.WriteString(label.Render("No entry yet. Press 1-5."))
	}
	pickerCard := components.ContentCard("How are you feeling?", picker.String(), cw, true)

	// Chart
	points := a.tr.MoodSeries(a.opts.MoodDays)
	values, present := pipeline.SeriesValues(points)
	chart := components.MoodChart(values, present, pipeline.SeriesLabels(points), t.Chart, components.CardInnerWidth(cw))
	chartCard := components.ContentCard(fmt.Sprintf("Mood · last %d days", a.opts.MoodDays), chart, cw, false)

	// Stats
	ms := a.tr.Summary(a.opts.WeekDays, a.opts.MoodDays).Mood
	latest := "-"
	if ms.Recorded > 0 {
		latest = ms.Latest.Label()
	}
	stats := components.StatRow([]components.Stat{
		{Label: "Average", Value: cli.FormatAverage(ms.Average, ms.Recorded)},
		{Label: "Days logged", Value: cli.FormatCount(ms.Recorded, ms.Days)},
		{Label: "Latest", Value: latest, Hint: latestHint(ms.LatestOn, a.tr.Today())},
	}, cw)

	return lipgloss.JoinVertical(lipgloss.Left, pickerCard, chartCard, stats)
}

func latestHint(key string, today time.Time) string {
	switch key {
	case "":
		return ""
	case dates.Key(today):
		return "today"
	default:
		return dates.ShortLabel(key)
	}
}
