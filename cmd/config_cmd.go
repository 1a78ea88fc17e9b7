package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/lifetrack/internal/config"

	"github.com/spf13/cobra"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

func configExists() bool {
	if flagConfig == "" {
		return config.Exists()
	}
	_, err := os.Stat(flagConfig)
	return err == nil
}

func saveConfig(cfg config.Config) error {
	if flagConfig == "" {
		return config.Save(cfg)
	}
	return config.SaveTo(flagConfig, cfg)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	path := configPath()

	fmt.Fprintf(out, "  Config file: %s\n", path)
	if configExists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [General]")
	fmt.Fprintf(out, "    Week days:  %d\n", cfg.General.WeekDays)
	fmt.Fprintf(out, "    Mood days:  %d\n", cfg.General.MoodDays)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Storage]")
	fmt.Fprintf(out, "    Backend:    %s\n", cfg.Storage.Backend)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		fmt.Fprintf(out, "    Database:   %s\n", cfg.SQLitePath())
	case config.BackendRedis:
		fmt.Fprintf(out, "    Address:    %s (db %d)\n", cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
		fmt.Fprintf(out, "    Prefix:     %s\n", cfg.Storage.RedisPrefix)
		if cfg.Storage.RedisPassword != "" {
			fmt.Fprintf(out, "    Password:   %s\n", maskSecret(cfg.Storage.RedisPassword))
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme:      %s (until one is chosen with `lifetrack theme`)\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Level:      %s\n", cfg.Log.Level)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `lifetrack setup` to reconfigure.")
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configPath()
	if configExists() && !flagConfigForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := saveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	say(cmd, "Wrote %s", path)
	return nil
}

func maskSecret(s string) string {
	if len(s) > 8 {
		return s[:2] + "..." + s[len(s)-2:]
	}
	return "****"
}
