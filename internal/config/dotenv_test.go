package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetForTest clears key and restores its previous value when the test ends.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDotenv(t *testing.T) {
	content := `# storage
TODO_T_DRIVER=sqlite
export TODO_T_EXPORTED=yes

# Quoted values
TODO_T_DOUBLE="double quoted"
TODO_T_SINGLE='single quoted'

TODO_T_SPACED = spaced value
not a pair
=orphan
`
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	keys := []string{"TODO_T_DRIVER", "TODO_T_EXPORTED", "TODO_T_DOUBLE", "TODO_T_SINGLE", "TODO_T_SPACED"}
	for _, k := range keys {
		unsetForTest(t, k)
	}

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}

	tests := []struct {
		key, want string
	}{
		{"TODO_T_DRIVER", "sqlite"},
		{"TODO_T_EXPORTED", "yes"},
		{"TODO_T_DOUBLE", "double quoted"},
		{"TODO_T_SINGLE", "single quoted"},
		{"TODO_T_SPACED", "spaced value"},
	}
	for _, tt := range tests {
		if got := os.Getenv(tt.key); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadDotenvNoOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(`TODO_T_EXISTING=new-value`), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TODO_T_EXISTING", "original")

	if err := LoadDotenv(path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if got := os.Getenv("TODO_T_EXISTING"); got != "original" {
		t.Errorf("existing var overridden: got %q", got)
	}
}

func TestLoadDotenvMissingFile(t *testing.T) {
	if err := LoadDotenv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("missing file should be ignored, got: %v", err)
	}
}
