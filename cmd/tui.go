package cmd

import (
	"context"
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/config"
	applog "github.com/theirongolddev/lifetrack/internal/log"
	"github.com/theirongolddev/lifetrack/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, err := applog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	// The alt screen owns stderr, so logs go to a file
	logger, closer, err := applog.OpenFile(config.CacheDir(), "tui.log", level)
	if err != nil {
		return err
	}
	defer closer.Close()
	applog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tr, err := openTracker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer tr.Close()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tr, tui.Options{
		WeekDays: cfg.General.WeekDays,
		MoodDays: cfg.General.MoodDays,
		Backend:  cfg.Storage.Backend,
		Logger:   logger,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
