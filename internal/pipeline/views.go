// Package pipeline builds the windowed views the CLI and TUI render from
// habit and mood state. Every builder is pure and leaves its inputs untouched.
package pipeline

import (
	"time"

	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
)

// Default window lengths.
const (
	HabitWindowDays = 7
	MoodWindowDays  = 30
)

// GridCell is one habit on one day.
type GridCell struct {
	Date    string
	Weekday string
	Day     int
	Done    bool
}

// GridRow is one habit across the window.
type GridRow struct {
	HabitID string
	Name    string
	Cells   []GridCell
}

// HabitGrid holds per-habit completion status, habit order then date order.
type HabitGrid struct {
	Dates []string
	Rows  []GridRow
}

// BuildHabitGrid looks up completion for every habit over the last days days
// ending at today. Missing entries read as not done.
func BuildHabitGrid(habits model.Habits, today time.Time, days int) HabitGrid {
	keys := dates.LastNDays(days, today)
	grid := HabitGrid{
		Dates: keys,
		Rows:  make([]GridRow, 0, len(habits)),
	}
	for _, h := range habits {
		row := GridRow{
			HabitID: h.ID,
			Name:    h.Name,
			Cells:   make([]GridCell, len(keys)),
		}
		for i, k := range keys {
			row.Cells[i] = GridCell{
				Date:    k,
				Weekday: dates.Weekday(k),
				Day:     dates.DayOfMonth(k),
				Done:    h.Done(k),
			}
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// MoodPoint is one day of the mood series. Gap marks a day with no entry;
// Score is zero only when Gap is true.
type MoodPoint struct {
	Date  string
	Label string
	Score model.Score
	Gap   bool
}

// BuildMoodSeries returns one point per day over the last days days ending at
// today. Days without a recorded mood become gaps rather than low values.
func BuildMoodSeries(moods model.Moods, today time.Time, days int) []MoodPoint {
	keys := dates.LastNDays(days, today)
	points := make([]MoodPoint, len(keys))
	for i, k := range keys {
		p := MoodPoint{Date: k, Label: dates.ShortLabel(k)}
		if s, ok := moods.Get(k); ok {
			p.Score = s
		} else {
			p.Gap = true
		}
		points[i] = p
	}
	return points
}

// SeriesValues converts points to chart values and a parallel presence mask.
func SeriesValues(points []MoodPoint) ([]float64, []bool) {
	values := make([]float64, len(points))
	present := make([]bool, len(points))
	for i, p := range points {
		if !p.Gap {
			values[i] = float64(p.Score)
			present[i] = true
		}
	}
	return values, present
}

// SeriesLabels returns the short labels of points in order.
func SeriesLabels(points []MoodPoint) []string {
	labels := make([]string, len(points))
	for i, p := range points {
		labels[i] = p.Label
	}
	return labels
}
