// Package storage provides the durable key-value stores backing the task list.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dohr-michael/todo/internal/config"
)

var (
	// ErrNotFound is returned by Get when a key has never been written.
	ErrNotFound = errors.New("key not found")
	// ErrInvalidKey is returned for keys no driver can store safely.
	ErrInvalidKey = errors.New("invalid key")
)

// KV is a minimal durable key-value store.
type KV interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// ValidateKey rejects empty keys and keys that could escape a directory.
func ValidateKey(key string) error {
	if !config.IsValidKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
