package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	toml "github.com/pelletier/go-toml/v2"

	"todolist/internal/task"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todo.db"
	DefaultLogName        = "todolist.log"
	DefaultStorageKey     = "tasks"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "TODOLIST_CONFIG"
	appDirName    = "todolist"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Edit       string `toml:"edit"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	NextField  string `toml:"next_field"`
	SortToggle string `toml:"sort_toggle"`
	Filter     string `toml:"filter"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	StorageKey    string `toml:"storage_key"`
	DefaultFilter string `toml:"default_filter"`
	SortAscending bool   `toml:"sort_ascending"`
	LogPath       string `toml:"log_path"`
	LogLevel      string `toml:"log_level"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath returns $TODOLIST_CONFIG when set, else config.toml in the
// user config directory, else config.toml in the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, appDirName, DefaultConfigFileName)
}

// LoadOrCreate reads the config at path, writing defaults there first if the
// file does not exist. Relative db and log paths resolve against the config
// file's directory.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg.resolve(filepath.Dir(path)), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogName
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.resolve(filepath.Dir(path)), nil
}

// Validate rejects values the program cannot act on.
func (c Config) Validate() error {
	if _, err := task.ParseFilter(c.DefaultFilter); err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}
	return nil
}

// Filter returns the parsed default filter.
func (c Config) Filter() task.Filter {
	f, _ := task.ParseFilter(c.DefaultFilter)
	return f
}

func (c Config) resolve(base string) Config {
	if !filepath.IsAbs(c.DBPath) && filepath.VolumeName(c.DBPath) == "" && !strings.HasPrefix(c.DBPath, "file:") {
		c.DBPath = filepath.Join(base, c.DBPath)
	}
	if !filepath.IsAbs(c.LogPath) {
		c.LogPath = filepath.Join(base, c.LogPath)
	}
	return c
}

func write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:        DefaultDBName,
		StorageKey:    DefaultStorageKey,
		DefaultFilter: string(task.FilterAll),
		SortAscending: true,
		LogPath:       DefaultLogName,
		LogLevel:      "info",
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Delete:     "d",
			Edit:       "e",
			Confirm:    "enter",
			Cancel:     "esc",
			NextField:  "tab",
			SortToggle: "s",
			Filter:     "f",
		},
	}
}
