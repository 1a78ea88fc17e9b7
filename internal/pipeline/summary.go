package pipeline

import (
	"time"

	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
)

// HabitSummary holds completion totals for one habit over a window.
type HabitSummary struct {
	HabitID   string
	Name      string
	Done      int
	Days      int
	Rate      float64 // 0-1
	Streak    int     // consecutive done days ending today (or yesterday if today is open)
	DoneToday bool
}

// MoodSummary holds mood statistics over a window. Gaps are excluded.
type MoodSummary struct {
	Days     int
	Recorded int
	Average  float64
	Min      model.Score
	Max      model.Score
	Latest   model.Score
	LatestOn string
}

// Summary is the top-level rollup printed by the CLI.
type Summary struct {
	Today  string
	Habits []HabitSummary
	Mood   MoodSummary
	// DoneToday and TotalHabits describe today's column of the grid.
	DoneToday   int
	TotalHabits int
}

// SummarizeHabits computes per-habit completion counts over the window.
func SummarizeHabits(habits model.Habits, today time.Time, days int) []HabitSummary {
	grid := BuildHabitGrid(habits, today, days)
	out := make([]HabitSummary, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		hs := HabitSummary{HabitID: row.HabitID, Name: row.Name, Days: len(row.Cells)}
		for _, c := range row.Cells {
			if c.Done {
				hs.Done++
			}
		}
		if hs.Days > 0 {
			hs.Rate = float64(hs.Done) / float64(hs.Days)
			hs.DoneToday = row.Cells[len(row.Cells)-1].Done
		}
		hs.Streak = streak(row.Cells)
		out = append(out, hs)
	}
	return out
}

// streak counts trailing done cells. An unfinished last cell (today) does not
// break a streak that ran through yesterday.
func streak(cells []GridCell) int {
	i := len(cells) - 1
	if i >= 0 && !cells[i].Done {
		i--
	}
	n := 0
	for ; i >= 0 && cells[i].Done; i-- {
		n++
	}
	return n
}

// SummarizeMoods computes statistics over the recorded days of the window.
func SummarizeMoods(moods model.Moods, today time.Time, days int) MoodSummary {
	points := BuildMoodSeries(moods, today, days)
	ms := MoodSummary{Days: len(points)}

	total := 0
	for _, p := range points {
		if p.Gap {
			continue
		}
		ms.Recorded++
		total += int(p.Score)
		if ms.Min == 0 || p.Score < ms.Min {
			ms.Min = p.Score
		}
		if p.Score > ms.Max {
			ms.Max = p.Score
		}
		ms.Latest = p.Score
		ms.LatestOn = p.Date
	}
	if ms.Recorded > 0 {
		ms.Average = float64(total) / float64(ms.Recorded)
	}
	return ms
}

// Summarize builds the combined rollup for the habit and mood windows.
func Summarize(habits model.Habits, moods model.Moods, today time.Time, habitDays, moodDays int) Summary {
	s := Summary{
		Habits:      SummarizeHabits(habits, today, habitDays),
		Mood:        SummarizeMoods(moods, today, moodDays),
		TotalHabits: len(habits),
	}
	s.Today = dates.Key(today)
	for _, h := range s.Habits {
		if h.DoneToday {
			s.DoneToday++
		}
	}
	return s
}
