package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTodoPath_Default(t *testing.T) {
	t.Setenv("TODO_PATH", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got, want := TodoPath(), filepath.Join(home, ".todo"); got != want {
		t.Errorf("TodoPath() = %q, want %q", got, want)
	}
}

func TestTodoPath_EnvOverride(t *testing.T) {
	t.Setenv("TODO_PATH", "/tmp/custom-todo")

	if got := TodoPath(); got != "/tmp/custom-todo" {
		t.Errorf("TodoPath() = %q, want %q", got, "/tmp/custom-todo")
	}
}

func TestDerivedPaths(t *testing.T) {
	t.Setenv("TODO_PATH", "/tmp/test-todo")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ConfigPath", ConfigPath(), "/tmp/test-todo/config.jsonc"},
		{"DotenvPath", DotenvPath(), "/tmp/test-todo/.env"},
		{"DataDir", DataDir(), "/tmp/test-todo/data"},
		{"DatabasePath", DatabasePath(), "/tmp/test-todo/todo.db"},
		{"LogPath", LogPath(), "/tmp/test-todo/logs/todo.log"},
		{"IdentityPath", IdentityPath(), "/tmp/test-todo/.age-key"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
