// Package secrets seals stored values with age X25519 keys.
package secrets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"filippo.io/age"
)

var (
	sealPrefix = []byte("ENC[age:")
	sealSuffix = []byte("]")
)

// ErrNotSealed is returned by Open for values that were never sealed.
var ErrNotSealed = errors.New("value is not sealed")

// GenerateIdentity creates an X25519 key pair and writes it to path with 0o600.
// It does nothing if the file already exists.
func GenerateIdentity(path string) (created bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return false, fmt.Errorf("generate age identity: %w", err)
	}

	content := fmt.Sprintf("# created by todo\n# public key: %s\n%s\n",
		identity.Recipient().String(), identity.String())

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create key directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return false, fmt.Errorf("write age key: %w", err)
	}
	return true, nil
}

// LoadIdentity reads the first X25519 identity from the given file.
func LoadIdentity(path string) (*age.X25519Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open age key: %w", err)
	}
	defer f.Close()

	identities, err := age.ParseIdentities(f)
	if err != nil {
		return nil, fmt.Errorf("parse age identities: %w", err)
	}
	if len(identities) == 0 {
		return nil, fmt.Errorf("no identities found in %s", path)
	}

	id, ok := identities[0].(*age.X25519Identity)
	if !ok {
		return nil, fmt.Errorf("unexpected identity type in %s", path)
	}
	return id, nil
}

// Seal encrypts plaintext for recipient and returns an ENC[age:...] blob.
func Seal(plaintext []byte, recipient age.Recipient) ([]byte, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, recipient)
	if err != nil {
		return nil, fmt.Errorf("age encrypt init: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("age encrypt write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("age encrypt close: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	out := make([]byte, 0, len(sealPrefix)+len(encoded)+len(sealSuffix))
	out = append(out, sealPrefix...)
	out = append(out, encoded...)
	out = append(out, sealSuffix...)
	return out, nil
}

// Open decrypts an ENC[age:...] blob.
func Open(blob []byte, identity age.Identity) ([]byte, error) {
	if !IsSealed(blob) {
		return nil, ErrNotSealed
	}

	encoded := blob[len(sealPrefix) : len(blob)-len(sealSuffix)]
	ciphertext, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}

	r, err := age.Decrypt(bytes.NewReader(ciphertext), identity)
	if err != nil {
		return nil, fmt.Errorf("age decrypt: %w", err)
	}

	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read decrypted: %w", err)
	}
	return plain, nil
}

// IsSealed reports whether b is an ENC[age:...] blob.
func IsSealed(b []byte) bool {
	return bytes.HasPrefix(b, sealPrefix) && bytes.HasSuffix(b, sealSuffix) &&
		len(b) >= len(sealPrefix)+len(sealSuffix)
}
