package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/cli"
	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/tracker"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Today's habits and recent mood at a glance",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	return withTracker(cmd, func(_ context.Context, cfg config.Config, tr *tracker.Tracker) error {
		out := cmd.OutOrStdout()
		weekDays, moodDays := cfg.General.WeekDays, cfg.General.MoodDays
		s := tr.Summary(weekDays, moodDays)

		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("LIFETRACK  %s", s.Today)))
		fmt.Fprintln(out)

		if s.TotalHabits == 0 {
			fmt.Fprintln(out, "  No habits yet. Add one with `lifetrack habit add NAME`.")
		} else {
			rows := make([][]string, 0, len(s.Habits))
			for _, h := range s.Habits {
				today := "·"
				if h.DoneToday {
					today = "●"
				}
				rows = append(rows, []string{h.Name, today, cli.FormatPercent(h.Rate), cli.FormatStreak(h.Streak)})
			}
			fmt.Fprintln(out, cli.RenderTable(cli.Table{
				Title:   fmt.Sprintf("Habits  Last %dd", weekDays),
				Headers: []string{"Habit", "Today", "Rate", "Streak"},
				Rows:    rows,
			}))
			fmt.Fprintf(out, "  Today  %s\n", cli.RenderProgressBar(s.DoneToday, s.TotalHabits, 20))
		}
		fmt.Fprintln(out)

		points := tr.MoodSeries(moodDays)
		fmt.Fprintf(out, "  Mood   %s\n", moodSparkline(points))
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTable(cli.Table{
			Title: fmt.Sprintf("Mood  Last %dd", moodDays),
			Rows:  moodRows(s.Mood),
		}))
		return nil
	})
}
