package secrets

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"filippo.io/age"
)

func TestGenerateIdentity_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", ".age-key")

	created, err := GenerateIdentity(path)
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	if !created {
		t.Error("expected created = true on first call")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("permissions = %o, want 0600", info.Mode().Perm())
	}
}

func TestGenerateIdentity_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".age-key")

	if _, err := GenerateIdentity(path); err != nil {
		t.Fatalf("first call: %v", err)
	}
	data1, _ := os.ReadFile(path)

	created, err := GenerateIdentity(path)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if created {
		t.Error("expected created = false on second call")
	}
	data2, _ := os.ReadFile(path)

	if !bytes.Equal(data1, data2) {
		t.Error("key file changed on second call")
	}
}

func TestLoadIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".age-key")
	if _, err := GenerateIdentity(path); err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}

	id, err := LoadIdentity(path)
	if err != nil {
		t.Fatalf("LoadIdentity: %v", err)
	}
	if id.Recipient() == nil {
		t.Fatal("recipient is nil")
	}
}

func TestLoadIdentity_Missing(t *testing.T) {
	if _, err := LoadIdentity(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing key file")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		t.Fatalf("generate identity: %v", err)
	}

	for _, plaintext := range [][]byte{
		[]byte(`[{"id":1,"text":"Buy milk","completed":false}]`),
		{},
	} {
		sealed, err := Seal(plaintext, identity.Recipient())
		if err != nil {
			t.Fatalf("Seal: %v", err)
		}
		if !IsSealed(sealed) {
			t.Errorf("IsSealed(%q) = false", sealed)
		}
		if len(plaintext) > 0 && bytes.Contains(sealed, plaintext) {
			t.Error("sealed blob leaks plaintext")
		}

		opened, err := Open(sealed, identity)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if !bytes.Equal(opened, plaintext) {
			t.Errorf("opened = %q, want %q", opened, plaintext)
		}
	}
}

func TestOpen_WrongIdentity(t *testing.T) {
	owner, _ := age.GenerateX25519Identity()
	other, _ := age.GenerateX25519Identity()

	sealed, err := Seal([]byte("secret"), owner.Recipient())
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Open(sealed, other); err == nil {
		t.Fatal("expected error decrypting with another identity")
	}
}

func TestOpen_RejectsPlaintext(t *testing.T) {
	identity, _ := age.GenerateX25519Identity()

	_, err := Open([]byte(`[]`), identity)
	if !errors.Is(err, ErrNotSealed) {
		t.Errorf("err = %v, want ErrNotSealed", err)
	}
}

func TestIsSealed(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"ENC[age:abc123]", true},
		{"ENC[age:]", true},
		{"[]", false},
		{"ENC[age:abc123", false},
		{"age:abc123]", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSealed([]byte(tt.input)); got != tt.want {
			t.Errorf("IsSealed(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
