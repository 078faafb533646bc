// Package config loads the todo configuration and resolves data paths.
package config

import "strings"

// Storage drivers.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// DefaultKey is the storage key holding the serialized task list.
const DefaultKey = "todos"

// Config is the root configuration for todo.
type Config struct {
	Storage StorageConfig `json:"storage"`
	Log     LogConfig     `json:"log"`
	UI      UIConfig      `json:"ui"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Driver       string `json:"driver"`                  // "file" | "sqlite" | "memory"
	Path         string `json:"path,omitempty"`          // directory (file) or database file (sqlite)
	Key          string `json:"key,omitempty"`           // key holding the list (default: "todos")
	Encrypt      bool   `json:"encrypt,omitempty"`       // seal stored values with age
	IdentityFile string `json:"identity_file,omitempty"` // age key (default: $TODO_PATH/.age-key)
}

// LogConfig configures slog output.
type LogConfig struct {
	Level string `json:"level"`          // "debug" | "info" | "warn" | "error"
	File  string `json:"file,omitempty"` // TUI log file (default: $TODO_PATH/logs/todo.log)
}

// UIConfig tunes the terminal UI.
type UIConfig struct {
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	Mouse       *bool  `json:"mouse,omitempty"` // nil means enabled
}

// MouseEnabled reports whether mouse click handling is on.
func (u UIConfig) MouseEnabled() bool {
	return u.Mouse == nil || *u.Mouse
}

// IsValidKey reports whether key can name a stored value on every driver:
// non-empty, not "." or "..", and without path separators.
func IsValidKey(key string) bool {
	return key != "" && key != "." && key != ".." && !strings.ContainsAny(key, `/\`)
}

// Default returns a config with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}
