// Package kv implements the repositories on top of a storage.KeyValueStore,
// encoding each collection as one JSON document.
package kv

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/vytor/kanaflash/internal/logger"
	"github.com/vytor/kanaflash/internal/storage"
)

// getJSON decodes key into v. found is false when the key is absent.
func getJSON(ctx context.Context, store storage.KeyValueStore, key string, v any) (found bool, err error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, err
	}
	return true, nil
}

func setJSON(ctx context.Context, store storage.KeyValueStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

// seed writes v under key, logging instead of failing: the caller already
// holds the value it is seeding.
func seed(ctx context.Context, store storage.KeyValueStore, key string, v any) {
	log := logger.FromContext(ctx).WithPrefix("kv_repo")
	if err := setJSON(ctx, store, key, v); err != nil {
		log.Warn("failed to seed %s: %v", key, err)
		return
	}
	log.Debug("seeded %s with default value", key)
}
