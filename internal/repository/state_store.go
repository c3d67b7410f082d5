package repository

import (
	"context"
	"encoding/json"
	"time"
)

// StateStore abstracts ephemeral key-value state: shopping carts and revoked
// refresh-token JTIs. Implementations: Redis (production) or in-memory
// (local dev / single-instance).
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// SetJSON marshals v and stores it under key with the given TTL.
func SetJSON(ctx context.Context, store StateStore, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, data, ttl)
}

// GetJSON loads key and unmarshals it into v. Returns (false, nil) when the
// key is absent or expired.
func GetJSON(ctx context.Context, store StateStore, key string, v interface{}) (bool, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}
