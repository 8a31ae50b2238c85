package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName names the XDG subdirectories and the database file.
const appName = "habitkit"

// DefaultStorageKey is the kv key holding the serialized habit collection.
const DefaultStorageKey = "habitTracker_habits"

// DefaultStreakCap matches the one-year display window.
const DefaultStreakCap = 365

// Config holds the top-level habitkit configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	Habits  HabitsConfig  `toml:"habits"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// HabitsConfig controls defaults for new habits and streak display.
type HabitsConfig struct {
	// StreakCap bounds how many days back a streak is counted.
	StreakCap    int    `toml:"streak_cap"`
	DefaultColor string `toml:"default_color"`
	DefaultIcon  string `toml:"default_icon"`
	// GridWeeks limits how many weeks `show` renders. 0 means fit the terminal.
	GridWeeks int `toml:"grid_weeks"`
}

type StorageConfig struct {
	Key string `toml:"key"`
}

type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	StateDir   string
	ConfigFile string
	DBFile     string
	LogFile    string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config")), appName)
	dataDir := filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share")), appName)
	stateDir := filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state")), appName)

	return Paths{
		ConfigDir:  configDir,
		DataDir:    dataDir,
		StateDir:   stateDir,
		ConfigFile: filepath.Join(configDir, "config.toml"),
		DBFile:     filepath.Join(dataDir, appName+".db"),
		LogFile:    filepath.Join(stateDir, appName+".log"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir, p.StateDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found. Keys missing
// from the file keep their defaults.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// StorageKey returns the configured kv key, falling back to the default.
func (c *Config) StorageKey() string {
	if c.Storage.Key == "" {
		return DefaultStorageKey
	}
	return c.Storage.Key
}

// StreakCap returns the configured cap, falling back to the default.
func (c *Config) StreakCap() int {
	if c.Habits.StreakCap <= 0 {
		return DefaultStreakCap
	}
	return c.Habits.StreakCap
}

func defaultConfig() *Config {
	return &Config{
		Habits: HabitsConfig{
			StreakCap:    DefaultStreakCap,
			DefaultColor: "#10b981",
			DefaultIcon:  "📝",
		},
		Storage: StorageConfig{Key: DefaultStorageKey},
		Log:     LogConfig{Level: "info"},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
