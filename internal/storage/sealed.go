package storage

import (
	"context"
	"fmt"

	"filippo.io/age"

	"github.com/dohr-michael/todo/internal/secrets"
)

// SealedKV encrypts values with age before handing them to the wrapped KV.
// Plaintext values already present are returned as-is, so the next Set
// seals a list that was stored before encryption was switched on.
type SealedKV struct {
	inner    KV
	identity *age.X25519Identity
}

// NewSealedKV wraps inner with the given identity.
func NewSealedKV(inner KV, identity *age.X25519Identity) *SealedKV {
	return &SealedKV{inner: inner, identity: identity}
}

func (s *SealedKV) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !secrets.IsSealed(data) {
		return data, nil
	}
	plain, err := secrets.Open(data, s.identity)
	if err != nil {
		return nil, fmt.Errorf("unseal %s: %w", key, err)
	}
	return plain, nil
}

func (s *SealedKV) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := secrets.Seal(value, s.identity.Recipient())
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *SealedKV) Close() error {
	return s.inner.Close()
}
