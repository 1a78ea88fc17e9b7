package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "lifetrack"

// Storage backends accepted in [storage].backend.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds all lifetrack configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds the view windows.
type GeneralConfig struct {
	WeekDays int `toml:"week_days"`
	MoodDays int `toml:"mood_days"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend       string `toml:"backend"`
	SQLitePath    string `toml:"sqlite_path,omitempty"`
	RedisAddr     string `toml:"redis_addr,omitempty"`
	RedisPassword string `toml:"redis_password,omitempty"`
	RedisDB       int    `toml:"redis_db,omitempty"`
	RedisPrefix   string `toml:"redis_prefix,omitempty"`
}

// AppearanceConfig holds theme settings. The persisted theme wins once one
// has been chosen; this is only the starting value.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds the log level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			WeekDays: 7,
			MoodDays: 30,
		},
		Storage: StorageConfig{
			Backend:     BackendSQLite,
			RedisAddr:   "localhost:6379",
			RedisPrefix: appName,
		},
		Appearance: AppearanceConfig{
			Theme: "pink",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the SQLite database.
func DataDir() string {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

// CacheDir returns the directory for logs written while the TUI owns the terminal.
func CacheDir() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, fallback, appName)
}

// SQLitePath returns the configured database path, or the default under DataDir.
func (c Config) SQLitePath() string {
	if c.Storage.SQLitePath != "" {
		return c.Storage.SQLitePath
	}
	return filepath.Join(DataDir(), appName+".db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config at path, returning defaults if it doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user or XDG dirs
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // see LoadFrom
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

// LoadDotEnv loads a .env file from the working directory if there is one.
// Variables already set in the environment are not overridden.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv returns cfg with LIFETRACK_* environment overrides applied.
// The environment wins over the file.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("LIFETRACK_BACKEND"); v != "" {
		cfg.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("LIFETRACK_DB"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("LIFETRACK_REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("LIFETRACK_REDIS_PASSWORD"); v != "" {
		cfg.Storage.RedisPassword = v
	}
	if v := os.Getenv("LIFETRACK_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Storage.RedisDB = n
		}
	}
	if v := os.Getenv("LIFETRACK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return cfg
}

// Validate reports the first problem with cfg, if any.
func (c Config) Validate() error {
	var problems []string

	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage backend %q (want sqlite, redis or memory)", c.Storage.Backend))
	}
	if c.General.WeekDays < 1 {
		problems = append(problems, fmt.Sprintf("general.week_days must be positive, got %d", c.General.WeekDays))
	}
	if c.General.MoodDays < 1 {
		problems = append(problems, fmt.Sprintf("general.mood_days must be positive, got %d", c.General.MoodDays))
	}
	if c.Storage.RedisDB < 0 {
		problems = append(problems, fmt.Sprintf("storage.redis_db must not be negative, got %d", c.Storage.RedisDB))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}
