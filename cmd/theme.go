package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/tracker"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [NAME]",
	Short: "Show or set the color theme",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string) error {
	return withTracker(cmd, func(ctx context.Context, _ config.Config, tr *tracker.Tracker) error {
		if len(args) == 0 {
			th := theme.ByName(tr.Theme())
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", th.Name, th.Title)
			return nil
		}

		if err := tr.SetTheme(ctx, args[0]); err != nil {
			return err
		}
		th := theme.ByName(tr.Theme())
		theme.SetActive(th.Name)
		say(cmd, "Theme set to %s", th.Title)
		return nil
	})
}

func runThemeList(cmd *cobra.Command, _ []string) error {
	return withTracker(cmd, func(_ context.Context, _ config.Config, tr *tracker.Tracker) error {
		out := cmd.OutOrStdout()
		for _, th := range theme.All {
			marker := " "
			if th.Name == tr.Theme() {
				marker = "*"
			}
			swatch := lipgloss.NewStyle().Foreground(th.Accent).Render("●") +
				lipgloss.NewStyle().Foreground(th.Chart).Render("●")
			fmt.Fprintf(out, "  %s %-8s %s  %s\n", marker, th.Name, swatch, th.Title)
		}
		return nil
	})
}
