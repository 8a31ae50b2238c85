package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	Type KeyType
	// Desc is shown in `habitkit config list`.
	Desc       string
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

var defaults = defaultConfig()

// SchemaKeys is the registry of all settable config keys. Keys use
// dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name for the dashboard greeting",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"habits.streak_cap": {
		Type:       KeyTypeInt,
		Desc:       "Maximum days counted back for a streak",
		DefaultStr: strconv.Itoa(DefaultStreakCap),
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.StreakCap()) },
		set: func(cfg *Config, v string) error {
			n, err := parsePositiveInt(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for habits.streak_cap: %w", v, err)
			}
			cfg.Habits.StreakCap = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Habits.StreakCap = DefaultStreakCap },
	},
	"habits.grid_weeks": {
		Type:       KeyTypeInt,
		Desc:       "Weeks shown in the activity grid (0 fits the terminal)",
		DefaultStr: "0",
		get:        func(cfg *Config) string { return strconv.Itoa(cfg.Habits.GridWeeks) },
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value %q for habits.grid_weeks: want a number >= 0", v)
			}
			cfg.Habits.GridWeeks = n
			return nil
		},
		unset: func(cfg *Config) { cfg.Habits.GridWeeks = 0 },
	},
	"habits.default_color": {
		Type:       KeyTypeString,
		Desc:       "Color for new habits without --color",
		DefaultStr: defaults.Habits.DefaultColor,
		get:        func(cfg *Config) string { return cfg.Habits.DefaultColor },
		set:        func(cfg *Config, v string) error { cfg.Habits.DefaultColor = v; return nil },
		unset:      func(cfg *Config) { cfg.Habits.DefaultColor = defaults.Habits.DefaultColor },
	},
	"habits.default_icon": {
		Type:       KeyTypeString,
		Desc:       "Icon for new habits without --icon",
		DefaultStr: defaults.Habits.DefaultIcon,
		get:        func(cfg *Config) string { return cfg.Habits.DefaultIcon },
		set:        func(cfg *Config, v string) error { cfg.Habits.DefaultIcon = v; return nil },
		unset:      func(cfg *Config) { cfg.Habits.DefaultIcon = defaults.Habits.DefaultIcon },
	},
	"storage.key": {
		Type:       KeyTypeString,
		Desc:       "Key under which habits are stored",
		DefaultStr: DefaultStorageKey,
		get:        func(cfg *Config) string { return cfg.StorageKey() },
		set: func(cfg *Config, v string) error {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("storage.key can't be empty")
			}
			cfg.Storage.Key = v
			return nil
		},
		unset: func(cfg *Config) { cfg.Storage.Key = DefaultStorageKey },
	},
	"log.level": {
		Type:       KeyTypeString,
		Desc:       "Log file level (debug, info, warn, error)",
		DefaultStr: "info",
		get:        func(cfg *Config) string { return cfg.Log.Level },
		set: func(cfg *Config, v string) error {
			switch strings.ToLower(v) {
			case "debug", "info", "warn", "error":
				cfg.Log.Level = strings.ToLower(v)
				return nil
			}
			return fmt.Errorf("invalid value %q for log.level (use debug, info, warn, error)", v)
		},
		unset: func(cfg *Config) { cfg.Log.Level = "info" },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number")
	}
	if n < 1 {
		return 0, fmt.Errorf("must be at least 1")
	}
	return n, nil
}
