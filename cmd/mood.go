package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/cli"
	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/model"
	"github.com/theirongolddev/lifetrack/internal/pipeline"
	"github.com/theirongolddev/lifetrack/internal/tracker"

	"github.com/spf13/cobra"
)

var (
	flagMoodOn   string
	flagMoodDays int
	flagMoodYes  bool
)

var errFutureDay = errors.New("cannot record a mood for a day after today")

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Record and review daily mood",
}

var moodSetCmd = &cobra.Command{
	Use:   "set SCORE",
	Short: "Rate a day from 1 (awful) to 5 (amazing)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMoodSet,
}

var moodGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the mood recorded for a day",
	Args:  cobra.NoArgs,
	RunE:  runMoodGet,
}

var moodChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show recent moods as a sparkline",
	Args:  cobra.NoArgs,
	RunE:  runMoodChart,
}

var moodClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded mood",
	Args:  cobra.NoArgs,
	RunE:  runMoodClear,
}

func init() {
	moodSetCmd.Flags().StringVar(&flagMoodOn, "on", "", "Day to rate (YYYY-MM-DD, default today)")
	moodGetCmd.Flags().StringVar(&flagMoodOn, "on", "", "Day to show (YYYY-MM-DD, default today)")
	moodChartCmd.Flags().IntVarP(&flagMoodDays, "days", "n", 0, "Days to chart (default from config)")
	moodClearCmd.Flags().BoolVarP(&flagMoodYes, "yes", "y", false, "Skip the confirmation prompt")
	moodCmd.AddCommand(moodSetCmd, moodGetCmd, moodChartCmd, moodClearCmd)
	rootCmd.AddCommand(moodCmd)
}

// parseScore accepts "1" through "5".
func parseScore(s string) (model.Score, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !model.Score(n).Valid() {
		return 0, fmt.Errorf("%q: %w", s, model.ErrInvalidScore)
	}
	return model.Score(n), nil
}

func runMoodSet(cmd *cobra.Command, args []string) error {
	score, err := parseScore(args[0])
	if err != nil {
		return err
	}
	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		day, err := dayArg(flagMoodOn, tr)
		if err != nil {
			return err
		}
		if dates.After(day, tr.TodayKey()) {
			return fmt.Errorf("%s: %w", day, errFutureDay)
		}
		if err := tr.SetMood(ctx, day, score); err != nil {
			return err
		}
		say(cmd, "%s  %s", day, cli.FormatScore(score))
		return nil
	})
}

func runMoodGet(cmd *cobra.Command, _ []string) error {
	return withTracker(cmd, func(_ context.Context, _ config.Config, tr *tracker.Tracker) error {
		day, err := dayArg(flagMoodOn, tr)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		score, ok := tr.GetMood(day)
		if !ok {
			fmt.Fprintf(out, "  %s  no mood recorded\n", day)
			return nil
		}
		fmt.Fprintf(out, "  %s  %s\n", day, cli.FormatScore(score))
		return nil
	})
}

func runMoodChart(cmd *cobra.Command, _ []string) error {
	return withTracker(cmd, func(_ context.Context, cfg config.Config, tr *tracker.Tracker) error {
		days := flagMoodDays
		if days <= 0 {
			days = cfg.General.MoodDays
		}
		out := cmd.OutOrStdout()
		points := tr.MoodSeries(days)
		ms := pipeline.SummarizeMoods(tr.Moods(), tr.Today(), days)

		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("MOOD  Last %dd", days)))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  "+moodSparkline(points))
		if first, last := points[0].Label, points[len(points)-1].Label; len(points) > 1 {
			fmt.Fprintf(out, "  %s%*s\n", first, max(days-len(first), len(last)+1), last)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTable(cli.Table{Rows: moodRows(ms)}))
		return nil
	})
}

func runMoodClear(cmd *cobra.Command, _ []string) error {
	ok, err := confirmed(flagMoodYes, "Delete every recorded mood?", "Habits and the theme are kept.")
	if err != nil || !ok {
		return err
	}
	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		if err := tr.ClearMoods(ctx); err != nil {
			return err
		}
		say(cmd, "All moods cleared")
		return nil
	})
}

func moodSparkline(points []pipeline.MoodPoint) string {
	values, present := pipeline.SeriesValues(points)
	return cli.RenderSparkline(values, present)
}

// moodRows renders a mood summary as label/value rows.
func moodRows(ms pipeline.MoodSummary) [][]string {
	if ms.Recorded == 0 {
		return [][]string{
			{"Days logged", cli.FormatCount(0, ms.Days)},
			{"Average", "-"},
		}
	}
	return [][]string{
		{"Days logged", cli.FormatCount(ms.Recorded, ms.Days)},
		{"Average", cli.FormatAverage(ms.Average, ms.Recorded)},
		{"Range", fmt.Sprintf("%d-%d", int(ms.Min), int(ms.Max))},
		{"Latest", fmt.Sprintf("%s (%s)", cli.FormatScore(ms.Latest), dates.ShortLabel(ms.LatestOn))},
	}
}
