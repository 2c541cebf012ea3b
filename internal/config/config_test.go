package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todolist/internal/task"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultConfigFileName)

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, "nested", DefaultDBName) {
		t.Errorf("DBPath: got %q", cfg.DBPath)
	}
	if cfg.StorageKey != DefaultStorageKey {
		t.Errorf("StorageKey: got %q", cfg.StorageKey)
	}
	if !cfg.SortAscending {
		t.Error("SortAscending: want true by default")
	}
	if cfg.Filter() != task.FilterAll {
		t.Errorf("Filter: got %q", cfg.Filter())
	}
	if cfg.Keys.SortToggle != "s" || cfg.Keys.Filter != "f" {
		t.Errorf("Keys: got %+v", cfg.Keys)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again != cfg {
		t.Errorf("reload: got %+v, want %+v", again, cfg)
	}
}

func TestLoadOrCreateReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFileName)
	content := `
db_path = "/var/lib/todo/tasks.db"
default_filter = "active"
sort_ascending = false
log_level = "debug"

[keys]
quit = "x"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if cfg.DBPath != "/var/lib/todo/tasks.db" {
		t.Errorf("DBPath: got %q", cfg.DBPath)
	}
	if cfg.Filter() != task.FilterActive {
		t.Errorf("Filter: got %q", cfg.Filter())
	}
	if cfg.SortAscending {
		t.Error("SortAscending: want false")
	}
	if cfg.Keys.Quit != "x" {
		t.Errorf("Keys.Quit: got %q", cfg.Keys.Quit)
	}
	if cfg.Keys.Add != "a" {
		t.Errorf("unset keys keep defaults, got Add=%q", cfg.Keys.Add)
	}
	if cfg.StorageKey != DefaultStorageKey {
		t.Errorf("StorageKey: got %q", cfg.StorageKey)
	}
	if cfg.LogPath != filepath.Join(dir, DefaultLogName) {
		t.Errorf("LogPath: got %q", cfg.LogPath)
	}
}

func TestLoadOrCreateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad filter", `default_filter = "urgent"`, "default_filter"},
		{"bad level", `log_level = "loud"`, "log_level"},
		{"bad toml", `db_path = `, "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadOrCreate(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadOrCreate: got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveConfigPathEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.toml")
	if got := ResolveConfigPath(); got != "/tmp/custom.toml" {
		t.Errorf("ResolveConfigPath: got %q", got)
	}
}
