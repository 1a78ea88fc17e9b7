// Package cmd implements the lifetrack CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/lifetrack/internal/config"
	"github.com/theirongolddev/lifetrack/internal/dates"
	applog "github.com/theirongolddev/lifetrack/internal/log"
	"github.com/theirongolddev/lifetrack/internal/store"
	"github.com/theirongolddev/lifetrack/internal/tracker"
	"github.com/theirongolddev/lifetrack/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagBackend string
	flagDB      string
	flagDate    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:           "lifetrack",
	Short:         "Habit and mood tracker",
	Long:          "Track daily habits and mood from the terminal: a weekly habit grid, a mood chart and an interactive dashboard.",
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/lifetrack/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagBackend, "backend", "b", "", "Storage backend: sqlite, redis or memory")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&flagDate, "date", "", "Treat this day (YYYY-MM-DD) as today")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress confirmations and warnings")
}

// loadConfig resolves the effective configuration: .env, then the config
// file, then LIFETRACK_* variables, then flags.
func loadConfig() (config.Config, error) {
	config.LoadDotEnv()

	var cfg config.Config
	var err error
	if flagConfig == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFrom(flagConfig)
	}
	if err != nil {
		return cfg, err
	}
	cfg = config.ApplyEnv(cfg)

	if flagBackend != "" {
		cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(flagBackend))
	}
	if flagDB != "" {
		cfg.Storage.SQLitePath = flagDB
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger used by plain CLI commands.
func newLogger(cfg config.Config) (*slog.Logger, error) {
	level, err := applog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if flagQuiet && level < slog.LevelError {
		level = slog.LevelError
	}
	logger := applog.New(applog.Config{Level: level, Component: applog.ComponentApp})
	applog.SetDefault(logger)
	return logger, nil
}

// clock returns the --date override as a clock, or the system clock.
func clock() (dates.Clock, error) {
	if flagDate == "" {
		return dates.SystemClock, nil
	}
	d, err := dates.Parse(flagDate)
	if err != nil {
		return nil, fmt.Errorf("--date: %w", err)
	}
	return func() time.Time { return d }, nil
}

// openTracker opens the configured store and loads tracker state from it.
// The caller closes the tracker.
func openTracker(ctx context.Context, cfg config.Config, logger *slog.Logger) (*tracker.Tracker, error) {
	clk, err := clock()
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(ctx, store.Options{
		Backend:       cfg.Storage.Backend,
		SQLitePath:    cfg.SQLitePath(),
		RedisAddr:     cfg.Storage.RedisAddr,
		RedisPassword: cfg.Storage.RedisPassword,
		RedisDB:       cfg.Storage.RedisDB,
		RedisPrefix:   cfg.Storage.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	tr, err := tracker.Open(ctx, kv,
		tracker.WithClock(clk),
		tracker.WithLogger(applog.WithComponent(logger, applog.ComponentTracker)),
		tracker.WithDefaultTheme(cfg.Appearance.Theme),
	)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	theme.SetActive(tr.Theme())
	return tr, nil
}

// withTracker runs fn against a freshly opened tracker and closes it after.
func withTracker(cmd *cobra.Command, fn func(ctx context.Context, cfg config.Config, tr *tracker.Tracker) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	tr, err := openTracker(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := tr.Close(); err != nil {
			logger.Warn("closing store", applog.FieldError, err)
		}
	}()

	return fn(ctx, cfg, tr)
}

// say prints a confirmation line unless --quiet is set.
func say(cmd *cobra.Command, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  "+format+"\n", args...)
}
