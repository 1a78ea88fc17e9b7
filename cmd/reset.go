package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/tracker"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all habits and moods",
	Long:  "Delete every habit, completion and mood entry. The selected theme is kept.",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	ok, err := confirmed(flagResetYes, "Clear all data?",
		"Every habit, completion and mood entry will be deleted. Your theme is kept.")
	if err != nil {
		return err
	}
	if !ok {
		say(cmd, "Nothing deleted")
		return nil
	}

	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		if err := tr.ClearAllData(ctx); err != nil {
			return err
		}
		say(cmd, "All data cleared")
		return nil
	})
}

// confirmed returns true straight away when yes is set, otherwise it asks
// with a huh confirm. Aborting the prompt counts as "no".
func confirmed(yes bool, title, description string) (bool, error) {
	if yes {
		return true, nil
	}

	choice := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt: %w (use --yes to skip it)", err)
	}
	return choice, nil
}
