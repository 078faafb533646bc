package storage

import (
	"context"
	"fmt"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/secrets"
)

// Open builds the KV selected by cfg, sealing it when encryption is enabled.
func Open(ctx context.Context, cfg config.StorageConfig) (KV, error) {
	var kv KV
	switch cfg.Driver {
	case config.DriverFile, "":
		kv = NewFileKV(cfg.Path)
	case config.DriverSQLite:
		s, err := OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, err
		}
		kv = s
	case config.DriverMemory:
		kv = NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if !cfg.Encrypt {
		return kv, nil
	}

	identity, err := secrets.LoadIdentity(cfg.IdentityFile)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("storage encryption: %w (run `todo key init`)", err)
	}
	return NewSealedKV(kv, identity), nil
}
