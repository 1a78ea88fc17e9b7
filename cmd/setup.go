package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	// Start from the existing config or defaults
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Title, th.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where should lifetrack keep your data?").
				Options(
					huh.NewOption("SQLite file (recommended)", config.BackendSQLite),
					huh.NewOption("Redis server", config.BackendRedis),
					huh.NewOption("Memory only (nothing is saved)", config.BackendMemory),
				).
				Value(&cfg.Storage.Backend),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Redis address").
				Placeholder("localhost:6379").
				Value(&cfg.Storage.RedisAddr),
			huh.NewInput().
				Title("Key prefix").
				Value(&cfg.Storage.RedisPrefix),
		).WithHideFunc(func() bool { return cfg.Storage.Backend != config.BackendRedis }),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Mood chart range").
				Options(
					huh.NewOption("14 days", 14),
					huh.NewOption("30 days", 30),
					huh.NewOption("90 days", 90),
				).
				Value(&cfg.General.MoodDays),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&cfg.Appearance.Theme),
		),
	)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to lifetrack!")
	fmt.Fprintln(out)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", configPath())
	fmt.Fprintln(out, "  Run `lifetrack setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
