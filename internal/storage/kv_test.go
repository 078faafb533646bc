package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/secrets"
)

// drivers returns a fresh instance of every KV implementation.
func drivers(t *testing.T) map[string]KV {
	t.Helper()

	sqlite, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("generate identity: %v", err)
	}

	kvs := map[string]KV{
		"memory": NewMemoryKV(),
		"file":   NewFileKV(filepath.Join(t.TempDir(), "data")),
		"sqlite": sqlite,
		"sealed": NewSealedKV(NewMemoryKV(), identity),
	}
	t.Cleanup(func() {
		for _, kv := range kvs {
			kv.Close()
		}
	})
	return kvs
}

func TestKV_GetMissing(t *testing.T) {
	for name, kv := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get(context.Background(), "todos")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Get missing: err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestKV_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	for name, kv := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			if err := kv.Set(ctx, "todos", []byte(`[{"id":1}]`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := kv.Set(ctx, "todos", []byte(`[]`)); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			got, err := kv.Get(ctx, "todos")
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != `[]` {
				t.Errorf("Get = %q, want %q", got, `[]`)
			}

			// Keys are independent.
			if _, err := kv.Get(ctx, "other"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get other: err = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestKV_InvalidKey(t *testing.T) {
	ctx := context.Background()
	for name, kv := range drivers(t) {
		if name == "sealed" {
			continue // delegates validation to the inner store on Set
		}
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
				if err := kv.Set(ctx, key, []byte("x")); !errors.Is(err, ErrInvalidKey) {
					t.Errorf("Set(%q): err = %v, want ErrInvalidKey", key, err)
				}
				if _, err := kv.Get(ctx, key); !errors.Is(err, ErrInvalidKey) {
					t.Errorf("Get(%q): err = %v, want ErrInvalidKey", key, err)
				}
			}
		})
	}
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	value := []byte("abc")
	if err := kv.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'z'

	got, _ := kv.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
}

func TestFileKV_AtomicWriteLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	kv := NewFileKV(dir)

	if err := kv.Set(context.Background(), "todos", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "todos.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("dir entries = %v, want [todos.json]", names)
	}
}

func TestSQLiteKV_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todo.db")

	kv, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := kv.Set(ctx, "todos", []byte(`[1]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, "todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[1]` {
		t.Errorf("Get = %q, want %q", got, `[1]`)
	}
}

func TestSealedKV_EncryptsAtRest(t *testing.T) {
	ctx := context.Background()
	identity, _ := age.GenerateX25519Identity()
	inner := NewMemoryKV()
	kv := NewSealedKV(inner, identity)

	if err := kv.Set(ctx, "todos", []byte(`[{"text":"secret"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	raw, _ := inner.Get(ctx, "todos")
	if !secrets.IsSealed(raw) {
		t.Fatalf("inner value not sealed: %q", raw)
	}

	got, err := kv.Get(ctx, "todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"text":"secret"}]` {
		t.Errorf("Get = %q", got)
	}
}

func TestSealedKV_PassesPlaintextThrough(t *testing.T) {
	ctx := context.Background()
	identity, _ := age.GenerateX25519Identity()
	inner := NewMemoryKV()
	_ = inner.Set(ctx, "todos", []byte(`[]`))

	got, err := NewSealedKV(inner, identity).Get(ctx, "todos")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get = %q, want plaintext passthrough", got)
	}
}

func TestSealedKV_WrongIdentityFails(t *testing.T) {
	ctx := context.Background()
	owner, _ := age.GenerateX25519Identity()
	other, _ := age.GenerateX25519Identity()
	inner := NewMemoryKV()

	if err := NewSealedKV(inner, owner).Set(ctx, "todos", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := NewSealedKV(inner, other).Get(ctx, "todos"); err == nil {
		t.Fatal("expected unseal error with a foreign identity")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	keyPath := filepath.Join(dir, ".age-key")
	if _, err := secrets.GenerateIdentity(keyPath); err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}

	tests := []struct {
		name string
		cfg  config.StorageConfig
		want string
	}{
		{"file", config.StorageConfig{Driver: config.DriverFile, Path: filepath.Join(dir, "data")}, "*storage.FileKV"},
		{"sqlite", config.StorageConfig{Driver: config.DriverSQLite, Path: filepath.Join(dir, "todo.db")}, "*storage.SQLiteKV"},
		{"memory", config.StorageConfig{Driver: config.DriverMemory}, "*storage.MemoryKV"},
		{"sealed", config.StorageConfig{Driver: config.DriverMemory, Encrypt: true, IdentityFile: keyPath}, "*storage.SealedKV"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := Open(ctx, tt.cfg)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer kv.Close()
			if got := fmt.Sprintf("%T", kv); got != tt.want {
				t.Errorf("Open type = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := Open(ctx, config.StorageConfig{Driver: "redis"}); err == nil {
		t.Error("expected error for unknown driver")
	}
	cfg := config.StorageConfig{
		Driver:       config.DriverMemory,
		Encrypt:      true,
		IdentityFile: filepath.Join(t.TempDir(), "missing-key"),
	}
	if _, err := Open(ctx, cfg); err == nil {
		t.Error("expected error for missing identity")
	}
}
