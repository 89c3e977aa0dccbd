package repository

import "context"

// SettingsRepository defines the interface for the key/value settings store.
type SettingsRepository interface {
	// Get returns the value for key, or ("", nil) when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set upserts a single key.
	Set(ctx context.Context, key, value string) error
	// SetMany upserts all pairs in one transaction; either every key is
	// persisted or none is.
	SetMany(ctx context.Context, pairs map[string]string) error
}
