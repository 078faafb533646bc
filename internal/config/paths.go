package config

import (
	"os"
	"path/filepath"
)

// TodoPath returns the root directory for todo data.
// It uses $TODO_PATH if set, otherwise defaults to ~/.todo.
func TodoPath() string {
	if v := os.Getenv("TODO_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".todo")
	}
	return filepath.Join(home, ".todo")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(TodoPath(), "config.jsonc")
}

// DotenvPath returns the path to the .env file.
func DotenvPath() string {
	return filepath.Join(TodoPath(), ".env")
}

// DataDir returns the default directory of the file storage driver.
func DataDir() string {
	return filepath.Join(TodoPath(), "data")
}

// DatabasePath returns the default sqlite database file.
func DatabasePath() string {
	return filepath.Join(TodoPath(), "todo.db")
}

// LogPath returns the default TUI log file.
func LogPath() string {
	return filepath.Join(TodoPath(), "logs", "todo.log")
}

// IdentityPath returns the default age key file.
func IdentityPath() string {
	return filepath.Join(TodoPath(), ".age-key")
}
