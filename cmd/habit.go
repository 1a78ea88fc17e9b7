package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/lifetrack/internal/cli"
	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/dates"
	"github.com/theirongolddev/lifetrack/internal/tracker"

	"github.com/spf13/cobra"
)

var flagHabitOn string

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits and their completions",
}

var habitAddCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add a habit",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHabitAdd,
}

var habitRmCmd = &cobra.Command{
	Use:     "rm ID|NAME",
	Aliases: []string{"delete"},
	Short:   "Delete a habit and its history",
	Args:    cobra.ExactArgs(1),
	RunE:    runHabitRm,
}

var habitToggleCmd = &cobra.Command{
	Use:   "toggle ID|NAME",
	Short: "Flip a habit's completion for a day",
	Args:  cobra.ExactArgs(1),
	RunE:  runHabitToggle,
}

var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits with their weekly totals",
	Args:    cobra.NoArgs,
	RunE:    runHabitList,
}

var habitGridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Show the habit grid for the last week",
	Args:  cobra.NoArgs,
	RunE:  runHabitGrid,
}

func init() {
	habitToggleCmd.Flags().StringVar(&flagHabitOn, "on", "", "Day to toggle (YYYY-MM-DD, default today)")
	habitCmd.AddCommand(habitAddCmd, habitRmCmd, habitToggleCmd, habitListCmd, habitGridCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitAdd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		h, ok, err := tr.AddHabit(ctx, name)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("habit name is empty")
		}
		say(cmd, "Added %q (%s)", h.Name, h.ID)
		return nil
	})
}

func runHabitRm(cmd *cobra.Command, args []string) error {
	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		h, err := tr.FindHabit(args[0])
		if err != nil {
			return err
		}
		if _, err := tr.DeleteHabit(ctx, h.ID); err != nil {
			return err
		}
		say(cmd, "Deleted %q", h.Name)
		return nil
	})
}

func runHabitToggle(cmd *cobra.Command, args []string) error {
	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		day, err := dayArg(flagHabitOn, tr)
		if err != nil {
			return err
		}
		h, err := tr.FindHabit(args[0])
		if err != nil {
			return err
		}
		if _, err := tr.ToggleCompletion(ctx, h.ID, day); err != nil {
			return err
		}

		updated, err := tr.FindHabit(h.ID)
		if err != nil {
			return err
		}
		state := "not done"
		if updated.Done(day) {
			state = "done"
		}
		say(cmd, "%s: %s on %s", updated.Name, state, day)
		return nil
	})
}

func runHabitList(cmd *cobra.Command, _ []string) error {
	return withTracker(cmd, func(_ context.Context, cfg config.Config, tr *tracker.Tracker) error {
		out := cmd.OutOrStdout()
		habits := tr.Habits()
		if len(habits) == 0 {
			fmt.Fprintln(out, "\n  No habits yet. Add one with `lifetrack habit add NAME`.")
			return nil
		}

		days := cfg.General.WeekDays
		s := tr.Summary(days, cfg.General.MoodDays)
		rows := make([][]string, 0, len(s.Habits))
		for _, h := range s.Habits {
			today := "·"
			if h.DoneToday {
				today = "●"
			}
			rows = append(rows, []string{
				h.Name,
				h.HabitID,
				today,
				cli.FormatCount(h.Done, h.Days),
				cli.FormatPercent(h.Rate),
				cli.FormatStreak(h.Streak),
			})
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Habits  Last %dd", days),
			Headers: []string{"Habit", "ID", "Today", "Done", "Rate", "Streak"},
			Rows:    rows,
		}))
		return nil
	})
}

func runHabitGrid(cmd *cobra.Command, _ []string) error {
	return withTracker(cmd, func(_ context.Context, cfg config.Config, tr *tracker.Tracker) error {
		out := cmd.OutOrStdout()
		g := tr.HabitGrid(cfg.General.WeekDays)
		if len(g.Rows) == 0 {
			fmt.Fprintln(out, "\n  No habits yet. Add one with `lifetrack habit add NAME`.")
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, cli.RenderHabitGrid(g))
		return nil
	})
}

// dayArg resolves an --on value to a date key, defaulting to today.
func dayArg(on string, tr *tracker.Tracker) (string, error) {
	if on == "" {
		return tr.TodayKey(), nil
	}
	if !dates.Valid(on) {
		return "", fmt.Errorf("--on %q: %w", on, dates.ErrInvalidKey)
	}
	return on, nil
}
